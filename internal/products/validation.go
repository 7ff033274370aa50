package products

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// product validates the input and returns the row to persist with defaults applied.
func (in ProductInput) product() (Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := validate.Struct(in); err != nil {
		return Product{}, translate(err, ErrMissingFields)
	}
	p := Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Description: in.Description,
		Image:       in.Image,
	}
	if p.Image == "" {
		p.Image = DefaultImage
	}
	return p, nil
}

func (in QuantityInput) quantity() (int, error) {
	if err := validate.Struct(in); err != nil {
		return 0, translate(err, ErrQuantityRequired)
	}
	return *in.Quantity, nil
}

// translate maps the first failing rule onto the package's validation errors.
// A missing field wins over a sign violation.
func translate(err error, missing error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return missing
		}
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "price":
			return ErrNegativePrice
		case "quantity":
			return ErrNegativeQuantity
		}
	}
	return missing
}
