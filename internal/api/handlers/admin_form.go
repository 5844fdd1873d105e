package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

const maxUploadBytes = 32 << 20

// uploadSet holds the files of a parsed multipart request open until the shop API call is done.
type uploadSet struct {
	files   []multipart.File
	uploads []shopapi.Upload
}

func (u *uploadSet) Close() {
	for _, f := range u.files {
		f.Close()
	}
}

func parseMultipart(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return errors.BadRequestError("Invalid multipart form").WithDetail(err.Error()).WithError(err)
	}

	return nil
}

func openUploads(r *http.Request, field string) (*uploadSet, error) {
	set := &uploadSet{}

	if r.MultipartForm == nil {
		return set, nil
	}

	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			set.Close()
			return nil, errors.BadRequestError(fmt.Sprintf("Could not read uploaded file %s", header.Filename)).WithError(err)
		}

		set.files = append(set.files, f)
		set.uploads = append(set.uploads, shopapi.Upload{Filename: header.Filename, Content: f})
	}

	return set, nil
}

// productForm reads the text fields of an admin product form. Absent fields stay nil.
func productForm(r *http.Request) (*models.ProductForm, error) {
	form := &models.ProductForm{
		Name:           formString(r, "name"),
		Description:    formString(r, "description"),
		Material:       formString(r, "material"),
		FabricCategory: formString(r, "fabric_category"),
		Size:           formString(r, "size"),
		Color:          formString(r, "color"),
	}

	appErr := errors.ValidationError("Validation failed")

	form.Price = formFloat(r, "price", appErr)
	form.PricePerMeter = formFloat(r, "price_per_meter", appErr)
	form.StockMeters = formFloat(r, "stock_meters", appErr)

	if raw := formString(r, "stock"); raw != nil {
		stock, err := strconv.Atoi(*raw)
		if err != nil {
			appErr.WithDetail("Field stock must be a whole number")
		} else {
			form.Stock = &stock
		}
	}

	// colors may be sent as repeated fields or as one comma separated value
	for _, v := range r.MultipartForm.Value["colors"] {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				form.Colors = append(form.Colors, c)
			}
		}
	}

	if len(appErr.Details) > 0 {
		return nil, appErr
	}

	return form, nil
}

func formString(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}

	v := strings.TrimSpace(values[0])

	return &v
}

func formFloat(r *http.Request, key string, appErr *errors.AppError) *float64 {
	raw := formString(r, key)
	if raw == nil {
		return nil
	}

	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		appErr.WithDetail(fmt.Sprintf("Field %s must be a number", key))
		return nil
	}

	return &v
}
