package graphql

import (
	domainerrors "sews/internal/domain/errors"
	"sews/internal/errors"

	"github.com/graphql-go/graphql"
)

// failureMessages turns a use case error into the message of a failed envelope.
// Overrides are looked up by error code first, then by kind. Internal errors
// always get the fallback so store text never reaches the client.
type failureMessages struct {
	byCode   map[string]string
	byKind   map[domainerrors.Kind]string
	fallback string
}

func (m failureMessages) message(err error) string {
	appErr, ok := errors.Find[domainerrors.AppError](err)
	if !ok {
		return m.fallback
	}
	if msg, ok := m.byCode[appErr.ErrorCode()]; ok {
		return msg
	}
	if appErr.Kind() == domainerrors.KindInternal {
		return m.fallback
	}
	if msg, ok := m.byKind[appErr.Kind()]; ok {
		return msg
	}

	return appErr.Error()
}

func succeeded(entityKey string, entity any, message string) map[string]any {
	return map[string]any{
		entityKey: entity,
		"success": true,
		"message": message,
	}
}

func failed(entityKey, message string) map[string]any {
	return map[string]any{
		entityKey: nil,
		"success": false,
		"message": message,
	}
}

// envelopeType builds the { <entity>, success, message } payload object.
// extra adds fields beside the entity, e.g. tokens.
func envelopeType(name, entityKey string, entityType graphql.Output, extra graphql.Fields) *graphql.Object {
	fields := graphql.Fields{
		entityKey: &graphql.Field{Type: entityType},
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	}
	for key, field := range extra {
		fields[key] = field
	}

	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields})
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)

	return s
}
