package graphql

import (
	"fmt"

	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/usecase"

	"github.com/graphql-go/graphql"
)

var (
	createCustomUserFailures = failureMessages{
		byKind: map[domainerrors.Kind]string{
			domainerrors.KindDuplicateIdentity: "User with this email already exists",
		},
		fallback: "Error creating user",
	}

	obtainJwtTokenFailures = failureMessages{
		byKind: map[domainerrors.Kind]string{
			domainerrors.KindInvalidCredentials: "Login failed. Please try again. Invalid credentials",
		},
		fallback: "Error during authentication",
	}

	customerLoginFailures = failureMessages{
		byKind: map[domainerrors.Kind]string{
			domainerrors.KindInvalidCredentials: "Authentication failed.",
		},
		fallback: "Error during authentication",
	}

	tailorLoginFailures = failureMessages{
		byCode: map[string]string{
			domainerrors.ErrCredentialsRequired.ErrorCode(): "Username and password are required",
			domainerrors.ErrInvalidIdentifier.ErrorCode():   "Invalid username format",
		},
		byKind: map[domainerrors.Kind]string{
			domainerrors.KindInvalidCredentials: "Invalid username or password",
		},
		fallback: "An unexpected error occurred during authentication",
	}

	registerTailorFailures = failureMessages{
		fallback: "Error during registration",
	}

	refreshTokenFailures = failureMessages{
		fallback: "Error refreshing token",
	}
)

func (r *resolver) accountMutations(types *objectTypes) graphql.Fields {
	tokenFields := func() graphql.Fields {
		return graphql.Fields{
			"token":   &graphql.Field{Type: graphql.String},
			"refresh": &graphql.Field{Type: graphql.String},
		}
	}
	customerLoginPayload := envelopeType("CustomerLoginPayload", "user", types.customUser, tokenFields())
	credentialsArgs := graphql.FieldConfigArgument{
		"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	return graphql.Fields{
		"createCustomUser": &graphql.Field{
			Type: envelopeType("CreateCustomUserPayload", "customUser", types.customUser, nil),
			Args: graphql.FieldConfigArgument{
				"firstName": &graphql.ArgumentConfig{Type: graphql.String},
				"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
				"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.createCustomUser,
		},
		"obtainJwtToken": &graphql.Field{
			Type: customerLoginPayload,
			Args: credentialsArgs,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return r.customerLogin(p, "Login successful", obtainJwtTokenFailures), nil
			},
		},
		"customerUserLogin": &graphql.Field{
			Type: customerLoginPayload,
			Args: credentialsArgs,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return r.customerLogin(p, "Authentication successful", customerLoginFailures), nil
			},
		},
		"tailorLogin": &graphql.Field{
			Type: envelopeType("TailorLoginPayload", "tailor", types.tailor, tokenFields()),
			Args: graphql.FieldConfigArgument{
				"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.tailorLogin,
		},
		"registerTailor": &graphql.Field{
			Type: envelopeType("RegisterTailorPayload", "tailor", types.tailor, nil),
			Args: graphql.FieldConfigArgument{
				"fullName":         &graphql.ArgumentConfig{Type: graphql.String},
				"username":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"nationalIdNumber": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"phoneNumber":      &graphql.ArgumentConfig{Type: graphql.String},
				"sex":              &graphql.ArgumentConfig{Type: graphql.String},
				"areaOfResidence":  &graphql.ArgumentConfig{Type: graphql.String},
				"areaOfWork":       &graphql.ArgumentConfig{Type: graphql.String},
				"password":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.registerTailor,
		},
		"refreshToken": &graphql.Field{
			Type: envelopeType("RefreshTokenPayload", "token", graphql.String, graphql.Fields{
				"expiresAt": &graphql.Field{Type: graphql.DateTime},
			}),
			Args: graphql.FieldConfigArgument{
				"refresh": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.refreshToken,
		},
	}
}

func (r *resolver) createCustomUser(p graphql.ResolveParams) (any, error) {
	customer, err := r.registration.RegisterCustomer(p.Context, &usecase.RegisterCustomerInput{
		FirstName: stringArg(p, "firstName"),
		LastName:  stringArg(p, "lastName"),
		Email:     stringArg(p, "email"),
		Password:  stringArg(p, "password"),
	})
	if err != nil {
		return failed("customUser", createCustomUserFailures.message(err)), nil
	}

	return succeeded("customUser", customerView(customer), "User created successfully"), nil
}

func (r *resolver) customerLogin(p graphql.ResolveParams, successMessage string, failures failureMessages) map[string]any {
	out, err := r.session.Login(p.Context, &usecase.LoginInput{
		Kind:       entity.PrincipalCustomer,
		Identifier: stringArg(p, "email"),
		Password:   stringArg(p, "password"),
	})
	if err != nil {
		return failed("user", failures.message(err))
	}

	payload := succeeded("user", customerView(out.Principal.Customer), successMessage)
	payload["token"] = out.Tokens.AccessToken
	payload["refresh"] = out.Tokens.RefreshToken

	return payload
}

func (r *resolver) tailorLogin(p graphql.ResolveParams) (any, error) {
	out, err := r.session.Login(p.Context, &usecase.LoginInput{
		Kind:       entity.PrincipalTailor,
		Identifier: stringArg(p, "username"),
		Password:   stringArg(p, "password"),
	})
	if err != nil {
		return failed("tailor", tailorLoginFailures.message(err)), nil
	}

	tailor := out.Principal.Tailor
	payload := succeeded("tailor", tailorView(tailor), fmt.Sprintf("Welcome back, %s!", tailor.Username))
	payload["token"] = out.Tokens.AccessToken
	payload["refresh"] = out.Tokens.RefreshToken

	return payload, nil
}

func (r *resolver) registerTailor(p graphql.ResolveParams) (any, error) {
	tailor, err := r.registration.RegisterTailor(p.Context, &usecase.RegisterTailorInput{
		FullName:         stringArg(p, "fullName"),
		Username:         stringArg(p, "username"),
		Email:            stringArg(p, "email"),
		NationalIDNumber: stringArg(p, "nationalIdNumber"),
		PhoneNumber:      stringArg(p, "phoneNumber"),
		Sex:              stringArg(p, "sex"),
		AreaOfResidence:  stringArg(p, "areaOfResidence"),
		AreaOfWork:       stringArg(p, "areaOfWork"),
		Password:         stringArg(p, "password"),
	})
	if err != nil {
		return failed("tailor", registerTailorFailures.message(err)), nil
	}

	return succeeded("tailor", tailorView(tailor), "Tailor registered successfully"), nil
}

func (r *resolver) refreshToken(p graphql.ResolveParams) (any, error) {
	out, err := r.session.Refresh(p.Context, stringArg(p, "refresh"))
	if err != nil {
		r.log(p.Context).Debug("Refresh rejected", "error", err)

		return failed("token", refreshTokenFailures.message(err)), nil
	}

	payload := succeeded("token", out.AccessToken, "Token refreshed")
	payload["expiresAt"] = out.ExpiresAt

	return payload, nil
}
