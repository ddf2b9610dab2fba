package constants

// Room grade, ordered STANDARD < SUPERIOR < DELUXE < SUITE < PRESIDENTIAL
const (
	GradeStandard     = "STANDARD"
	GradeSuperior     = "SUPERIOR"
	GradeDeluxe       = "DELUXE"
	GradeSuite        = "SUITE"
	GradePresidential = "PRESIDENTIAL"
)

var RoomGrades = []string{GradeStandard, GradeSuperior, GradeDeluxe, GradeSuite, GradePresidential}

// Room status
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusMaintenance = "MAINTENANCE"
	RoomStatusUnavailable = "UNAVAILABLE"
)

// Booking status
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusCheckedOut,
	BookingStatusCancelled,
}

// Payment status
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// Chat message roles
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// IsValidBookingStatus kiểm tra status có nằm trong tập trạng thái hợp lệ không
func IsValidBookingStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidRoomGrade(grade string) bool {
	for _, g := range RoomGrades {
		if g == grade {
			return true
		}
	}
	return false
}

func IsValidRoomStatus(status string) bool {
	return status == RoomStatusAvailable || status == RoomStatusMaintenance || status == RoomStatusUnavailable
}
