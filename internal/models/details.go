package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LineDetails is the variant payload of a line item, keyed by LineType.
// The unexported methods keep the set of variants closed to this package.
type LineDetails interface {
	LineType() LineType
	clone() LineDetails
	check() error
}

type ReadyMadeDetails struct {
	Material string `json:"material"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

func (ReadyMadeDetails) LineType() LineType { return LineTypeReadyMade }

func (d ReadyMadeDetails) clone() LineDetails { return d }

func (d ReadyMadeDetails) check() error { return nil }

type FabricDetails struct {
	Material      string  `json:"material"`
	Length        float64 `json:"length"`
	PricePerMeter float64 `json:"price_per_meter"`
}

func (FabricDetails) LineType() LineType { return LineTypeFabric }

func (d FabricDetails) clone() LineDetails { return d }

func (d FabricDetails) check() error {
	if d.Length <= 0 {
		return errors.New("fabric length must be greater than zero")
	}

	return nil
}

type CustomDetails struct {
	Fabric       string       `json:"fabric"`
	Material     string       `json:"material"`
	Color        string       `json:"color"`
	Meters       float64      `json:"meters"`
	Measurements Measurements `json:"measurements"`
}

func (CustomDetails) LineType() LineType { return LineTypeCustom }

func (d CustomDetails) clone() LineDetails {
	d.Measurements = d.Measurements.Clone()

	return d
}

func (d CustomDetails) check() error {
	if d.Meters <= 0 {
		return errors.New("custom suit meters must be greater than zero")
	}

	return d.Measurements.Check()
}

func decodeDetails(t LineType, raw json.RawMessage) (LineDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrMissingDetails
	}

	switch t {
	case LineTypeReadyMade:
		var d ReadyMadeDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decoding ready-made details: %w", err)
		}
		return d, nil
	case LineTypeFabric:
		var d FabricDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decoding fabric details: %w", err)
		}
		return d, nil
	case LineTypeCustom:
		var d CustomDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decoding custom details: %w", err)
		}
		return d, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLineType, t)
}
