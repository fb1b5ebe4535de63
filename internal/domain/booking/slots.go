package booking

// ===============================
// Time Slots
// ===============================

// SlotAll is the sentinel accepted by the availability query to mean
// "every slot on that day".
const SlotAll = "all"

// TimeSlots is the fixed set of bookable one-hour windows. The 12-1 PM gap
// is lunch. Order matters only for display.
var TimeSlots = []string{
	"8:00 AM - 9:00 AM",
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
}

func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
