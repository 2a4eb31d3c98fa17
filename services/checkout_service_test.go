package services

import (
	"encoding/base64"
	"testing"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlip() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake png bytes"))
}

func TestCheckoutBlockedWithoutName(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))

	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "   "})
	assert.ErrorIs(t, err, ErrNameMissing)

	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCheckoutBlockedWithEmptyCart(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	svc := newCheckoutService(db)

	// stage สลิปก็ไม่ได้ถ้าตะกร้าว่าง
	assert.ErrorIs(t, svc.StageSlip(sess, testSlip()), ErrCartEmpty)

	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutBlockedWithoutSlip(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))

	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	assert.ErrorIs(t, err, ErrSlipMissing)

	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestStageSlipValidatesImage(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))

	assert.ErrorIs(t, svc.StageSlip(sess, "not-a-data-url"), utils.ErrNotDataURL)
	assert.ErrorIs(t, svc.StageSlip(sess, "data:text/plain;base64,aGVsbG8="), utils.ErrNotImage)

	require.NoError(t, svc.StageSlip(sess, testSlip()))
	assert.Equal(t, entity.CheckoutAwaitingPayment, sess.CheckoutState)
}

func TestCancelSlipReturnsToFilling(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)
	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))

	require.NoError(t, svc.CancelSlip(sess))
	assert.Equal(t, entity.CheckoutFilling, sess.CheckoutState)
	assert.Empty(t, sess.SlipData)

	// ตะกร้ายังอยู่ แค่สลิปหาย
	view, err := cartSvc.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestCheckoutCreatesOrderWithFrozenSnapshot(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	itemA := seedMenuItem(t, db, "กาแฟเย็น", 50, entity.CategoryDrinks)
	itemB := seedMenuItem(t, db, "แซนด์วิช", 30, entity.CategoryFood)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	// [{A: 50 x2}, {B: 30 x1}]
	require.NoError(t, cartSvc.Add(sess.ID, itemA.ID))
	require.NoError(t, cartSvc.Add(sess.ID, itemA.ID))
	require.NoError(t, cartSvc.Add(sess.ID, itemB.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))

	order, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai", CustomerPhone: "081-234-5678"})
	require.NoError(t, err)

	assert.Equal(t, "Somchai", order.CustomerName)
	assert.Equal(t, int64(130), order.Total)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.NotEmpty(t, order.PaymentSlip)
	require.Len(t, order.Items, 2)

	// session จบที่ completed, ตะกร้ากับสลิปถูกล้าง
	assert.Equal(t, entity.CheckoutCompleted, sess.CheckoutState)
	assert.Equal(t, order.ID, sess.LastOrderID)
	assert.Empty(t, sess.SlipData)
	view, err := cartSvc.Get(sess.ID)
	require.NoError(t, err)
	assert.Zero(t, view.ItemCount)

	// แก้/ลบเมนูทีหลัง ต้องไม่กระทบ snapshot ในออเดอร์
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", itemA.ID).Update("price", 999).Error)
	require.NoError(t, db.Delete(&entity.MenuItem{}, itemB.ID).Error)

	saved, err := svc.CompletedOrder(sess)
	require.NoError(t, err)
	assert.Equal(t, int64(130), saved.Total)
	require.Len(t, saved.Items, 2)

	byName := map[string]entity.OrderItem{}
	for _, it := range saved.Items {
		byName[it.MenuItemName] = it
	}
	assert.Equal(t, int64(50), byName["กาแฟเย็น"].MenuItemPrice)
	assert.Equal(t, 2, byName["กาแฟเย็น"].Quantity)
	assert.Equal(t, int64(30), byName["แซนด์วิช"].MenuItemPrice)
	assert.Equal(t, 1, byName["แซนด์วิช"].Quantity)
}

func TestSubmitFailureRestoresAwaitingPayment(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))
	slip := sess.SlipData

	// ทำให้เขียนรายการออเดอร์พังกลาง transaction
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	require.Error(t, err)

	// rollback หมด ไม่มีออเดอร์ค้าง
	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)

	// session กลับมารอสลิปพร้อมสลิปเดิม
	assert.Equal(t, entity.CheckoutAwaitingPayment, sess.CheckoutState)
	assert.Equal(t, slip, sess.SlipData)

	// ตะกร้ายังอยู่ครบ สั่งซ้ำได้เลย
	view, err := cartSvc.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestSubmitFailureKeepsPreviousReceiptPointer(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))
	first, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	require.NoError(t, err)

	// สั่งรอบใหม่ต่อเลยโดยไม่ reset
	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))

	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))
	_, err = svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	require.Error(t, err)

	// ใบเสร็จของออเดอร์แรกต้องไม่หาย
	assert.Equal(t, first.ID, sess.LastOrderID)
}

func TestSubmitTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))
	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	require.NoError(t, err)

	// retry ของ client หลังจบไปแล้ว ไม่ใช่ 400 ธรรมดา
	_, err = svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestCompletedOrderRequiresCompletedState(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	svc := newCheckoutService(db)

	_, err := svc.CompletedOrder(sess)
	assert.ErrorIs(t, err, ErrNoCompletedOrder)
}

func TestResetStartsFreshCart(t *testing.T) {
	db := newTestDB(t)
	sess := newTestSession(t, db)
	tea := seedMenuItem(t, db, "ชาเย็น", 25, entity.CategoryDrinks)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	require.NoError(t, cartSvc.Add(sess.ID, tea.ID))
	require.NoError(t, svc.StageSlip(sess, testSlip()))
	_, err := svc.Submit(sess, &SubmitOrderIn{CustomerName: "Somchai"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(sess))
	assert.Equal(t, entity.CheckoutFilling, sess.CheckoutState)
	assert.Zero(t, sess.LastOrderID)

	view, err := cartSvc.Get(sess.ID)
	require.NoError(t, err)
	assert.Zero(t, view.ItemCount)

	// ออเดอร์เดิมยังอยู่ใน DB ไม่ถูกลบ
	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
