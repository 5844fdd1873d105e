package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdarven/storefront/internal/models"
)

func customLine() models.LineItem {
	return models.LineItem{
		ID:       "custom-7-1740823200123",
		Type:     models.LineTypeCustom,
		Name:     "Custom Suit - Boski",
		Price:    2500,
		Quantity: 1,
		Details: models.CustomDetails{
			Fabric: "Boski", Material: "Boski", Color: "Grey", Meters: 2.5,
			Measurements: models.Measurements{
				MeasurementType: models.MeasurementTypeCustom,
				Cuffs:           models.CuffsNo,
				CollarType:      models.CollarShirt,
				BottomWear:      models.BottomWearShalwar,
				Collar:          15, Shoulder: 18, Chest: 40, Sleeves: 24, KameezLength: 40,
				Shalwar: &models.ShalwarMeasurements{Length: 38},
			},
		},
	}
}

func TestLineItemJSON(t *testing.T) {
	t.Run("Details decode into the shape selected by type", func(t *testing.T) {
		tests := []struct {
			name string
			body string
			want models.LineDetails
		}{
			{
				name: "ready-made",
				body: `{"id":"a","type":"ready-made","name":"Kurta","price":5000,"quantity":1,"details":{"material":"Cotton","size":"M","color":"Grey"}}`,
				want: models.ReadyMadeDetails{Material: "Cotton", Size: "M", Color: "Grey"},
			},
			{
				name: "fabric",
				body: `{"id":"b","type":"fabric","name":"Wash n Wear","price":1500,"quantity":1,"details":{"material":"Poly","length":2.5,"price_per_meter":600}}`,
				want: models.FabricDetails{Material: "Poly", Length: 2.5, PricePerMeter: 600},
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				var item models.LineItem

				require.NoError(t, json.Unmarshal([]byte(tc.body), &item))
				assert.Equal(t, tc.want, item.Details)
				require.NoError(t, item.Check())
			})
		}
	})

	t.Run("Custom line keeps its measurements", func(t *testing.T) {
		// Arrange
		original := customLine()
		data, err := json.Marshal(original)
		require.NoError(t, err)

		// Act
		var decoded models.LineItem
		err = json.Unmarshal(data, &decoded)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
		assert.Contains(t, string(data), `"bottom_wear":"shalwar"`)
		assert.NotContains(t, string(data), `"pajama"`)
	})

	t.Run("Unknown type is a decode error", func(t *testing.T) {
		var item models.LineItem

		err := json.Unmarshal([]byte(`{"id":"x","type":"gift-card","details":{}}`), &item)

		assert.ErrorIs(t, err, models.ErrUnknownLineType)
	})

	t.Run("Missing details is a decode error", func(t *testing.T) {
		var item models.LineItem

		err := json.Unmarshal([]byte(`{"id":"x","type":"fabric"}`), &item)

		assert.ErrorIs(t, err, models.ErrMissingDetails)
	})
}

func TestLineItemCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.LineItem)
		ok     bool
	}{
		{name: "Valid custom line", mutate: func(*models.LineItem) {}, ok: true},
		{name: "Empty id", mutate: func(li *models.LineItem) { li.ID = "" }},
		{name: "Zero quantity", mutate: func(li *models.LineItem) { li.Quantity = 0 }},
		{name: "Quantity above the cap", mutate: func(li *models.LineItem) { li.Quantity = models.MaxLineQuantity + 1 }},
		{name: "Quantity at the cap", mutate: func(li *models.LineItem) { li.Quantity = models.MaxLineQuantity }, ok: true},
		{name: "Negative price", mutate: func(li *models.LineItem) { li.Price = -1 }},
		{name: "Free line is allowed", mutate: func(li *models.LineItem) { li.Price = 0 }, ok: true},
		{name: "Unknown type", mutate: func(li *models.LineItem) { li.Type = "bundle" }},
		{name: "Type and details disagree", mutate: func(li *models.LineItem) { li.Type = models.LineTypeFabric }},
		{name: "Missing details", mutate: func(li *models.LineItem) { li.Details = nil }},
		{name: "Both bottom wear branches", mutate: func(li *models.LineItem) {
			d := li.Details.(models.CustomDetails)
			d.Measurements.Pajama = &models.PajamaMeasurements{Length: 39, Waist: 34, Thigh: 24}
			li.Details = d
		}},
		{name: "Neither bottom wear branch", mutate: func(li *models.LineItem) {
			d := li.Details.(models.CustomDetails)
			d.Measurements.Shalwar = nil
			li.Details = d
		}},
		{name: "Branch does not match bottom wear", mutate: func(li *models.LineItem) {
			d := li.Details.(models.CustomDetails)
			d.Measurements.BottomWear = models.BottomWearPajama
			li.Details = d
		}},
		{name: "Zero meters", mutate: func(li *models.LineItem) {
			d := li.Details.(models.CustomDetails)
			d.Meters = 0
			li.Details = d
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := customLine()
			tc.mutate(&item)

			err := item.Check()

			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLineItemClone(t *testing.T) {
	original := customLine()

	clone := original.Clone()
	clone.Details.(models.CustomDetails).Measurements.Shalwar.Length = 10

	assert.Equal(t, float64(38), original.Details.(models.CustomDetails).Measurements.Shalwar.Length)
	assert.Equal(t, models.Amount(2500), original.LineTotal())
}
