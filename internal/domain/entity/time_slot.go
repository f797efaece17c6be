package entity

// TimeSlot is one bookable time-of-day value with its display label.
// The set is a fixed enumeration; slots are not persisted.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeSlots is the ordered list of bookable times for a clinic day
var TimeSlots = []TimeSlot{
	{Value: "08:00", Label: "8:00 AM"},
	{Value: "09:00", Label: "9:00 AM"},
	{Value: "10:00", Label: "10:00 AM"},
	{Value: "11:00", Label: "11:00 AM"},
	{Value: "12:00", Label: "12:00 PM"},
	{Value: "13:00", Label: "1:00 PM"},
	{Value: "14:00", Label: "2:00 PM"},
	{Value: "15:00", Label: "3:00 PM"},
	{Value: "16:00", Label: "4:00 PM"},
}

// IsValidTimeSlot reports whether value is part of the enumeration
func IsValidTimeSlot(value string) bool {
	for _, slot := range TimeSlots {
		if slot.Value == value {
			return true
		}
	}
	return false
}

// TimeSlotLabel returns the display label for a slot value, or the raw
// value when it is not part of the enumeration.
func TimeSlotLabel(value string) string {
	for _, slot := range TimeSlots {
		if slot.Value == value {
			return slot.Label
		}
	}
	return value
}
