package core

import "fmt"

// BedroomType is the closed set of floorplan bedroom counts tracked by the
// workbook. The entry sheet constrains its bedroom column to these values, so
// every formula branching on a bedroom cell is generated from this enum.
type BedroomType int

const (
	Studio BedroomType = iota
	OneBR
	TwoBR
	ThreeBR
	FourBR
	FiveBR
)

// BedroomTypes lists all types in reference-sheet order.
var BedroomTypes = []BedroomType{Studio, OneBR, TwoBR, ThreeBR, FourBR, FiveBR}

// Label returns the display label used in cells and droplists.
func (b BedroomType) Label() string {
	switch b {
	case Studio:
		return "Studio"
	case OneBR:
		return "1 BR"
	case TwoBR:
		return "2 BR"
	case ThreeBR:
		return "3 BR"
	case FourBR:
		return "4 BR"
	case FiveBR:
		return "5 BR"
	}
	return ""
}

// BedsPerUnit returns the occupant capacity of one unit of this type.
func (b BedroomType) BedsPerUnit() int {
	if b == Studio {
		return 1
	}
	return int(b)
}

// ParseBedroomType resolves a display label back to its BedroomType.
func ParseBedroomType(label string) (BedroomType, error) {
	for _, b := range BedroomTypes {
		if b.Label() == label {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown bedroom type: %s", label)
}

// BedroomLabels returns the labels in order, for the droplist constraint.
func BedroomLabels() []string {
	labels := make([]string, len(BedroomTypes))
	for i, b := range BedroomTypes {
		labels[i] = b.Label()
	}
	return labels
}
