package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopdarven/storefront/internal/models"
)

const (
	readyMadePath     = "/ready-made"
	fabricsPath       = "/fabrics"
	customFabricsPath = "/custom-fabrics"
	landingPath       = "/landing-images"
)

func (c *Client) ListReadyMade(ctx context.Context) ([]models.ReadyMadeProduct, error) {
	var products []models.ReadyMadeProduct
	if err := c.getJSON(ctx, readyMadePath, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetReadyMade(ctx context.Context, id int64) (*models.ReadyMadeProduct, error) {
	var product models.ReadyMadeProduct
	if err := c.getJSON(ctx, idPath(readyMadePath, id), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// CreateReadyMade uploads a new product. The API requires at least one image.
func (c *Client) CreateReadyMade(ctx context.Context, form *models.ProductForm, images []Upload) (*models.ReadyMadeProduct, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var product models.ReadyMadeProduct
	if err := c.sendMultipart(ctx, http.MethodPost, readyMadePath, fields, "files", images, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateReadyMade changes only the fields set on form. New images replace the old ones.
func (c *Client) UpdateReadyMade(ctx context.Context, id int64, form *models.ProductForm, images []Upload) (*models.ReadyMadeProduct, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var product models.ReadyMadeProduct
	if err := c.sendMultipart(ctx, http.MethodPut, idPath(readyMadePath, id), fields, "files", images, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteReadyMade(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath(readyMadePath, id))
}

func (c *Client) ListFabrics(ctx context.Context) ([]models.Fabric, error) {
	var fabrics []models.Fabric
	if err := c.getJSON(ctx, fabricsPath, &fabrics); err != nil {
		return nil, err
	}

	return fabrics, nil
}

func (c *Client) GetFabric(ctx context.Context, id int64) (*models.Fabric, error) {
	var fabric models.Fabric
	if err := c.getJSON(ctx, idPath(fabricsPath, id), &fabric); err != nil {
		return nil, err
	}

	return &fabric, nil
}

func (c *Client) CreateFabric(ctx context.Context, form *models.ProductForm, images []Upload) (*models.Fabric, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var fabric models.Fabric
	if err := c.sendMultipart(ctx, http.MethodPost, fabricsPath, fields, "files", images, &fabric); err != nil {
		return nil, err
	}

	return &fabric, nil
}

func (c *Client) UpdateFabric(ctx context.Context, id int64, form *models.ProductForm, images []Upload) (*models.Fabric, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var fabric models.Fabric
	if err := c.sendMultipart(ctx, http.MethodPut, idPath(fabricsPath, id), fields, "files", images, &fabric); err != nil {
		return nil, err
	}

	return &fabric, nil
}

func (c *Client) DeleteFabric(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath(fabricsPath, id))
}

func (c *Client) ListCustomFabrics(ctx context.Context) ([]models.CustomFabric, error) {
	var fabrics []models.CustomFabric
	if err := c.getJSON(ctx, customFabricsPath, &fabrics); err != nil {
		return nil, err
	}

	return fabrics, nil
}

// CreateCustomFabric uploads a made-to-measure fabric with its single image.
func (c *Client) CreateCustomFabric(ctx context.Context, form *models.ProductForm, image Upload) (*models.CustomFabric, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var fabric models.CustomFabric
	if err := c.sendMultipart(ctx, http.MethodPost, customFabricsPath, fields, "file", []Upload{image}, &fabric); err != nil {
		return nil, err
	}

	return &fabric, nil
}

// UpdateCustomFabric keeps the current image when image is nil.
func (c *Client) UpdateCustomFabric(ctx context.Context, id int64, form *models.ProductForm, image *Upload) (*models.CustomFabric, error) {
	fields, err := productFields(form)
	if err != nil {
		return nil, err
	}

	var files []Upload
	if image != nil {
		files = []Upload{*image}
	}

	var fabric models.CustomFabric
	if err := c.sendMultipart(ctx, http.MethodPut, idPath(customFabricsPath, id), fields, "file", files, &fabric); err != nil {
		return nil, err
	}

	return &fabric, nil
}

func (c *Client) DeleteCustomFabric(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath(customFabricsPath, id))
}

func (c *Client) ListLandingImages(ctx context.Context) ([]models.LandingImage, error) {
	var images []models.LandingImage
	if err := c.getJSON(ctx, landingPath, &images); err != nil {
		return nil, err
	}

	return images, nil
}

// UpdateLandingImage replaces the image of a landing category; "hero" adds another slide instead.
func (c *Client) UpdateLandingImage(ctx context.Context, category string, image Upload) (*models.LandingImage, error) {
	var landing models.LandingImage

	path := landingPath + "/" + escape(category)
	if err := c.sendMultipart(ctx, http.MethodPost, path, nil, "file", []Upload{image}, &landing); err != nil {
		return nil, err
	}

	return &landing, nil
}

func (c *Client) UpdateLandingPortrait(ctx context.Context, category string, id int64, image Upload) (*models.LandingImage, error) {
	var landing models.LandingImage

	path := fmt.Sprintf("%s/%s/portrait/%d", landingPath, escape(category), id)
	if err := c.sendMultipart(ctx, http.MethodPost, path, nil, "file", []Upload{image}, &landing); err != nil {
		return nil, err
	}

	return &landing, nil
}

func (c *Client) DeleteLandingImage(ctx context.Context, id int64) error {
	return c.delete(ctx, idPath(landingPath, id))
}
