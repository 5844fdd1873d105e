package models

// DefaultColors is the palette offered when a catalog item carries no color list.
var DefaultColors = []string{"Jet Black", "Navy Blue", "Milky White", "Grey", "Dark Purple"}

// StandardColor is recorded for custom suits cut from a fabric without a color list.
const StandardColor = "Standard"

var FabricCategories = []string{"Wash n Wear", "Blended", "Boski", "Soft Cotton", "Giza Moon Cotton"}

type ReadyMadeProduct struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	Material       string    `json:"material"`
	FabricCategory string    `json:"fabric_category,omitempty"`
	Size           string    `json:"size"`
	Colors         []string  `json:"colors,omitempty"`
	Images         []string  `json:"images"`
	Stock          int       `json:"stock"`
	CreatedAt      Timestamp `json:"created_at"`
}

type Fabric struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PricePerMeter  float64   `json:"price_per_meter"`
	Material       string    `json:"material"`
	FabricCategory string    `json:"fabric_category,omitempty"`
	Colors         []string  `json:"colors,omitempty"`
	Images         []string  `json:"images"`
	StockMeters    float64   `json:"stock_meters"`
	CreatedAt      Timestamp `json:"created_at"`
}

// CustomFabric is a made-to-measure fabric. Price is quoted for a 4-meter reference suit.
type CustomFabric struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Material    string   `json:"material"`
	Colors      []string `json:"colors,omitempty"`
	ImageURL    string   `json:"image_url"`
}

type LandingImage struct {
	ID               int64   `json:"id"`
	Category         string  `json:"category"`
	ImageURL         string  `json:"image_url"`
	PortraitImageURL *string `json:"portrait_image_url,omitempty"`
	Title            string  `json:"title"`
	Link             *string `json:"link,omitempty"`
}

// CatalogFilter narrows a catalog listing. Zero values mean "no constraint".
type CatalogFilter struct {
	FabricCategory string
	Material       string
	Color          string
	MinPrice       float64
	MaxPrice       float64
}

// ProductForm carries the text fields of an admin create/update of a ready-made product,
// fabric or custom fabric. Nil fields are left out of the multipart body. Ready-made
// products take a single Color; custom fabrics take the Colors list.
type ProductForm struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PricePerMeter  *float64 `json:"price_per_meter,omitempty" validate:"omitempty,gte=0"`
	Material       *string  `json:"material,omitempty"`
	FabricCategory *string  `json:"fabric_category,omitempty"`
	Size           *string  `json:"size,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Colors         []string `json:"colors,omitempty"`
	Stock          *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	StockMeters    *float64 `json:"stock_meters,omitempty" validate:"omitempty,gte=0"`
}

// LandingCategories are the sections of the landing page an image can be assigned to.
var LandingCategories = []string{"ready-made", "stitch-your-own", "fabric", "hero"}
