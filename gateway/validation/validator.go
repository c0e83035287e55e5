package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/airship-store/backend/gateway/apierrors"
	"github.com/airship-store/backend/gateway/models"
)

// CreateProductRequest is the write model for POST /products. Numeric
// fields are pointers so a legitimate zero still satisfies `required`.
type CreateProductRequest struct {
	ID                string `json:"id" validate:"required"`
	Title             string `json:"title" validate:"required"`
	PassengerCapacity *int   `json:"passenger_capacity" validate:"required,gte=0"`
	MaximumSpeed      *int   `json:"maximum_speed" validate:"required,gte=0"`
	InStock           *int   `json:"in_stock" validate:"required,gte=0"`
}

// CreateOrderRequest is the write model for POST /orders.
type CreateOrderRequest struct {
	OrderDetails []CreateOrderDetail `json:"order_details" validate:"required,min=1,dive"`
}

type CreateOrderDetail struct {
	ProductID string           `json:"product_id" validate:"required"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	Quantity  *int             `json:"quantity" validate:"required,gt=0"`
}

// Validator checks raw request bodies against the write models. It never
// performs I/O; whether a referenced product exists is not its concern.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// Report json field names in failure reasons, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// ParseCreateProduct decodes and validates a product-create body,
// returning the normalized product to submit to the catalog.
func (v *Validator) ParseCreateProduct(body []byte) (*models.Product, error) {
	var req CreateProductRequest
	if err := v.decode(body, &req); err != nil {
		return nil, err
	}
	if err := v.check(&req); err != nil {
		return nil, err
	}

	return &models.Product{
		ID:                req.ID,
		Title:             req.Title,
		PassengerCapacity: *req.PassengerCapacity,
		MaximumSpeed:      *req.MaximumSpeed,
		InStock:           *req.InStock,
	}, nil
}

// ParseCreateOrder decodes and validates an order-create body, returning
// the normalized detail sequence to submit to the order service.
func (v *Validator) ParseCreateOrder(body []byte) ([]models.NewOrderDetail, error) {
	var req CreateOrderRequest
	if err := v.decode(body, &req); err != nil {
		return nil, err
	}
	if err := v.check(&req); err != nil {
		return nil, err
	}

	details := make([]models.NewOrderDetail, 0, len(req.OrderDetails))
	for _, d := range req.OrderDetails {
		details = append(details, models.NewOrderDetail{
			ProductID: d.ProductID,
			Quantity:  *d.Quantity,
			Price:     *d.Price,
		})
	}
	return details, nil
}

// decode separates malformed JSON (a request-format error) from bodies
// that parse but do not fit the model (a validation error).
func (v *Validator) decode(body []byte, out interface{}) error {
	err := json.Unmarshal(body, out)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || len(body) == 0 {
		return apierrors.BadRequest("request body is not valid JSON")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apierrors.Validation(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}
	return apierrors.Validation(err.Error())
}

func (v *Validator) check(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		reasons := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			reasons = append(reasons, fieldReason(fe))
		}
		return apierrors.Validation(strings.Join(reasons, "; "))
	}
	return apierrors.Validation(err.Error())
}

func fieldReason(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
