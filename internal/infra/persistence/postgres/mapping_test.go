package postgres

import (
	"reflect"
	"regexp"
	"strconv"
	"testing"
	"time"

	"sews/internal/domain/entity"
	"sews/internal/infra/persistence/model"
	"sews/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromTailorDomain_CanonicalisesIdentifiers(t *testing.T) {
	tailor := &entity.Tailor{
		ID:                 uuid.New(),
		Username:           "  Jane@ ",
		Email:              "Jane@Example.COM ",
		NationalIDNumber:   " 1990-0001 ",
		Sex:                entity.SexFemale,
		DateOfRegistration: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		IsActive:           true,
	}

	m := fromTailorDomain(tailor)

	assert.Equal(t, "jane", m.Username)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.Equal(t, "1990-0001", m.NationalIDNumber)
	assert.Equal(t, "Female", m.Sex)

	back := toTailorDomain(m)
	assert.Equal(t, tailor.ID, back.ID)
	assert.Equal(t, entity.SexFemale, back.Sex)
	assert.True(t, back.DateOfRegistration.Equal(tailor.DateOfRegistration))
}

func TestFromCustomerDomain_LowercasesEmail(t *testing.T) {
	m := fromCustomerDomain(&entity.Customer{Email: " Ann@Shop.io", FirstName: "Ann", IsActive: true})

	assert.Equal(t, "ann@shop.io", m.Email)
	assert.True(t, m.IsActive)
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_tailors_username" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
}

func TestIsValueOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "string too long", err: errors.Wrap(&pgconn.PgError{Code: "22001"}, "insert"), want: true},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, want: true},
		{name: "message only", err: errors.New("ERROR: value too long for type character varying(20) (SQLSTATE 22001)"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "connection", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValueOutOfRange(tt.err))
		})
	}
}

// Every length the registration and catalogue inputs accept must fit its column.
func TestInputLimitsFitColumns(t *testing.T) {
	pairs := []struct {
		input  any
		field  string
		model  any
		column string
	}{
		{usecase.RegisterCustomerInput{}, "FirstName", model.CustomerModel{}, "FirstName"},
		{usecase.RegisterCustomerInput{}, "LastName", model.CustomerModel{}, "LastName"},
		{usecase.RegisterCustomerInput{}, "Email", model.CustomerModel{}, "Email"},
		{usecase.RegisterTailorInput{}, "FullName", model.TailorModel{}, "FullName"},
		{usecase.RegisterTailorInput{}, "Username", model.TailorModel{}, "Username"},
		{usecase.RegisterTailorInput{}, "Email", model.TailorModel{}, "Email"},
		{usecase.RegisterTailorInput{}, "NationalIDNumber", model.TailorModel{}, "NationalIDNumber"},
		{usecase.RegisterTailorInput{}, "PhoneNumber", model.TailorModel{}, "PhoneNumber"},
		{usecase.RegisterTailorInput{}, "AreaOfResidence", model.TailorModel{}, "AreaOfResidence"},
		{usecase.RegisterTailorInput{}, "AreaOfWork", model.TailorModel{}, "AreaOfWork"},
		{usecase.ClothingStyleInput{}, "Name", model.ClothingStyleModel{}, "Name"},
		{usecase.ClothingStyleInput{}, "Image", model.ClothingStyleModel{}, "Image"},
		{usecase.TailorProductInput{}, "ProductName", model.TailorProductModel{}, "ProductName"},
		{usecase.TailorProductInput{}, "ProductImage", model.TailorProductModel{}, "ProductImage"},
	}

	maxRe := regexp.MustCompile(`(?:^|,)max=(\d+)`)
	varcharRe := regexp.MustCompile(`varchar\((\d+)\)`)

	for _, p := range pairs {
		t.Run(p.field, func(t *testing.T) {
			in, ok := reflect.TypeOf(p.input).FieldByName(p.field)
			require.True(t, ok)
			col, ok := reflect.TypeOf(p.model).FieldByName(p.column)
			require.True(t, ok)

			maxM := maxRe.FindStringSubmatch(in.Tag.Get("validate"))
			require.NotNil(t, maxM, "%s has no max length", p.field)
			colM := varcharRe.FindStringSubmatch(col.Tag.Get("gorm"))
			require.NotNil(t, colM, "%s is not a varchar column", p.column)

			accepted, _ := strconv.Atoi(maxM[1])
			width, _ := strconv.Atoi(colM[1])
			assert.LessOrEqual(t, accepted, width)
		})
	}
}
