package constants

// Role định nghĩa tập role đóng của hệ thống
const (
	RoleUser       = "USER"
	RoleStaff      = "STAFF"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Action định nghĩa các hành động cần kiểm tra quyền
type Action string

const (
	ActionManageRooms    Action = "rooms:manage"
	ActionDeleteRooms    Action = "rooms:delete"
	ActionManageBookings Action = "bookings:manage"
	ActionManageFAQ      Action = "faq:manage"
	ActionManageChatbot  Action = "chatbot:manage"
	ActionViewAnalytics  Action = "analytics:view"
	ActionCreateBooking  Action = "bookings:create"
	ActionReviewBooking  Action = "bookings:review"
	ActionVerifyPayment  Action = "payments:verify"
)

// rolePermissions ánh xạ role -> tập action được phép
var rolePermissions = map[string][]Action{
	RoleUser: {
		ActionCreateBooking,
		ActionReviewBooking,
		ActionVerifyPayment,
	},
	RoleStaff: {
		ActionManageRooms,
		ActionManageBookings,
		ActionManageFAQ,
		ActionManageChatbot,
		ActionViewAnalytics,
		ActionCreateBooking,
		ActionReviewBooking,
		ActionVerifyPayment,
	},
	RoleSuperAdmin: {
		ActionManageRooms,
		ActionDeleteRooms,
		ActionManageBookings,
		ActionManageFAQ,
		ActionManageChatbot,
		ActionViewAnalytics,
		ActionCreateBooking,
		ActionReviewBooking,
		ActionVerifyPayment,
	},
}

// CanPerform kiểm tra role có được phép thực hiện action không
func CanPerform(role string, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
