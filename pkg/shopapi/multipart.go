package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/shopdarven/storefront/internal/models"
)

// Upload is one image part of a multipart request.
type Upload struct {
	Filename string
	Content  io.Reader
}

type formField struct {
	name  string
	value string
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, fields []formField, fileField string, files []Upload, out any) error {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("writing field %s: %w", f.name, err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(fileField, file.Filename)
		if err != nil {
			return fmt.Errorf("creating part for %s: %w", file.Filename, err)
		}

		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copying %s: %w", file.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	return c.do(ctx, method, path, &buf, writer.FormDataContentType(), out)
}

func productFields(form *models.ProductForm) ([]formField, error) {
	var fields []formField

	addString := func(name string, v *string) {
		if v != nil {
			fields = append(fields, formField{name, *v})
		}
	}

	addFloat := func(name string, v *float64) {
		if v != nil {
			fields = append(fields, formField{name, strconv.FormatFloat(*v, 'f', -1, 64)})
		}
	}

	addString("name", form.Name)
	addString("description", form.Description)
	addFloat("price", form.Price)
	addFloat("price_per_meter", form.PricePerMeter)
	addString("material", form.Material)
	addString("fabric_category", form.FabricCategory)
	addString("size", form.Size)
	addString("color", form.Color)

	if form.Colors != nil {
		colors, err := json.Marshal(form.Colors)
		if err != nil {
			return nil, fmt.Errorf("encoding colors: %w", err)
		}

		fields = append(fields, formField{"colors", string(colors)})
	}

	if form.Stock != nil {
		fields = append(fields, formField{"stock", strconv.Itoa(*form.Stock)})
	}

	addFloat("stock_meters", form.StockMeters)

	return fields, nil
}
