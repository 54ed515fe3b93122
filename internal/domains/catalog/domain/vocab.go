package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnumValue is the shared failure for every vocabulary parse.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// ToolType enumerates the gardening tools sold by the shop.
type ToolType string

const (
	ToolTypeHoe    ToolType = "HOE"
	ToolTypeBucket ToolType = "BUCKET"
)

// PotType enumerates pot materials.
type PotType string

const (
	PotTypeCeramic    PotType = "CERAMIC"
	PotTypePlastic    PotType = "PLASTIC"
	PotTypeTerracotta PotType = "TERRACOTTA"
)

// PotSize enumerates pot sizes.
type PotSize string

const (
	PotSizeSmall  PotSize = "SMALL"
	PotSizeMedium PotSize = "MEDIUM"
	PotSizeLarge  PotSize = "LARGE"
)

// ProductType enumerates the catalog categories.
type ProductType string

const (
	ProductTypePlant ProductType = "PLANT"
	ProductTypePot   ProductType = "POT"
	ProductTypeTool  ProductType = "TOOL"
)

// ParseToolType resolves a free-form code case-insensitively.
func ParseToolType(raw string) (ToolType, error) {
	switch ToolType(normalize(raw)) {
	case ToolTypeHoe:
		return ToolTypeHoe, nil
	case ToolTypeBucket:
		return ToolTypeBucket, nil
	default:
		return "", fmt.Errorf("%w: %q is not a tool type", ErrUnknownEnumValue, raw)
	}
}

// ParsePotType resolves a free-form code case-insensitively.
func ParsePotType(raw string) (PotType, error) {
	switch PotType(normalize(raw)) {
	case PotTypeCeramic:
		return PotTypeCeramic, nil
	case PotTypePlastic:
		return PotTypePlastic, nil
	case PotTypeTerracotta:
		return PotTypeTerracotta, nil
	default:
		return "", fmt.Errorf("%w: %q is not a pot type", ErrUnknownEnumValue, raw)
	}
}

// ParsePotSize resolves a free-form code case-insensitively.
func ParsePotSize(raw string) (PotSize, error) {
	switch PotSize(normalize(raw)) {
	case PotSizeSmall:
		return PotSizeSmall, nil
	case PotSizeMedium:
		return PotSizeMedium, nil
	case PotSizeLarge:
		return PotSizeLarge, nil
	default:
		return "", fmt.Errorf("%w: %q is not a pot size", ErrUnknownEnumValue, raw)
	}
}

// ParseProductType resolves a free-form code case-insensitively.
func ParseProductType(raw string) (ProductType, error) {
	switch ProductType(normalize(raw)) {
	case ProductTypePlant:
		return ProductTypePlant, nil
	case ProductTypePot:
		return ProductTypePot, nil
	case ProductTypeTool:
		return ProductTypeTool, nil
	default:
		return "", fmt.Errorf("%w: %q is not a product type", ErrUnknownEnumValue, raw)
	}
}

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
