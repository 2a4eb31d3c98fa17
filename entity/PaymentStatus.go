package entity

// PaymentStatus เริ่มที่ pending แล้วแอดมินเปลี่ยนเป็น approved/rejected
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// Label สำหรับแสดงผล/ไฟล์ export
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentApproved:
		return "อนุมัติ"
	case PaymentRejected:
		return "ปฏิเสธ"
	default:
		return "รอตรวจสอบ"
	}
}
