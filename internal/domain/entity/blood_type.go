package entity

import "slices"

// BloodType is one of the eight ABO/Rh blood groups a donor can declare.
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// BloodTypes lists every valid blood type in display order.
var BloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

// String returns the string representation of the BloodType.
func (b BloodType) String() string {
	return string(b)
}

// IsValid checks if the BloodType is one of the eight known groups.
func (b BloodType) IsValid() bool {
	return slices.Contains(BloodTypes, b)
}
