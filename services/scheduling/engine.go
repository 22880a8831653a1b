package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bookingRepo "fieldbook/database/repository/booking"
	facilityRepo "fieldbook/database/repository/facility"
	scheduleRepo "fieldbook/database/repository/schedule"
	"fieldbook/models"
	"fieldbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeScheduleReconcile is the asynq task enqueued after booking
// mutations so the worker re-runs reconciliation as a repair pass.
const TypeScheduleReconcile = "schedule:reconcile"

// ReconcilePayload is the task payload for TypeScheduleReconcile.
type ReconcilePayload struct {
	FacilityID string `json:"facilityId"`
	Date       string `json:"date"`
}

const scheduleCacheTTL = 5 * time.Minute

// DefaultSchedulingEngine is the production scheduling engine.
type DefaultSchedulingEngine struct {
	Bookings   bookingRepo.BookingRepository
	Schedules  scheduleRepo.ScheduleRepository
	Facilities facilityRepo.FacilityRepository

	// Cache holds per-(facility,date) schedule snapshots; nil disables
	// caching. Tasks enqueues repair reconciles; nil disables that.
	Cache *redis.Client
	Tasks *asynq.Client

	// Day window used when a facility/day has no schedule and no
	// special hours.
	DayOpen     string
	DayClose    string
	SlotMinutes int
}

func (se *DefaultSchedulingEngine) CheckAvailability(ctx context.Context, facilityID, date, startTime, endTime string) (bool, error) {
	if v := ValidateRange(date, startTime, endTime); !v.OK {
		return false, fmt.Errorf("%w: %s", ErrInvalidRange, v.Reason)
	}

	sched, err := se.loadSchedule(ctx, facilityID, date)
	if err != nil {
		return false, err
	}
	live, err := se.Bookings.ListLive(ctx, facilityID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load live bookings: %w", err)
	}
	return IsAvailable(facilityID, date, startTime, endTime, live, sched), nil
}

func (se *DefaultSchedulingEngine) Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if v := ValidateRange(req.Date, req.StartTime, req.EndTime); !v.OK {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, v.Reason)
	}

	facility, err := se.Facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		if err == facilityRepo.ErrNotFound {
			return nil, ErrFacilityUnavailable
		}
		return nil, fmt.Errorf("failed to load facility: %w", err)
	}
	if !facility.Active {
		return nil, ErrFacilityUnavailable
	}

	hours := float64(MinutesBetween(req.StartTime, req.EndTime)) / 60.0
	booking := &models.Booking{
		ID:          uuid.New().String(),
		FacilityID:  req.FacilityID,
		UserID:      req.UserID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.BookingStatusPending,
		BookingCode: newBookingCode(),
		TotalPrice:  facility.HourlyPrice * hours,
		Currency:    facility.Currency,
	}

	// The predicate runs once more inside the repo transaction against
	// the snapshot read there; that run is the one that counts.
	admit := func(sched *models.Schedule, live []models.Booking) bool {
		return IsAvailable(req.FacilityID, req.Date, req.StartTime, req.EndTime, live, sched)
	}
	if err := se.Bookings.ReserveTransactionally(ctx, booking, admit); err != nil {
		if err == bookingRepo.ErrConflict {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if err := se.ReconcileDay(ctx, req.FacilityID, req.Date); err != nil {
		logger.Error("reconcile after reserve failed",
			zap.String("facilityID", req.FacilityID), zap.String("date", req.Date), zap.Error(err))
	}
	se.enqueueReconcile(req.FacilityID, req.Date)

	return booking, nil
}

func (se *DefaultSchedulingEngine) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return se.transition(ctx, bookingID, models.BookingStatusPending, models.BookingStatusConfirmed)
}

func (se *DefaultSchedulingEngine) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsLive() {
		return nil, fmt.Errorf("booking %s is %s and cannot be cancelled", bookingID, booking.Status)
	}
	return se.applyStatus(ctx, booking, models.BookingStatusCancelled)
}

func (se *DefaultSchedulingEngine) transition(ctx context.Context, bookingID, from, to string) (*models.Booking, error) {
	booking, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != from {
		return nil, fmt.Errorf("booking %s is %s, expected %s", bookingID, booking.Status, from)
	}
	return se.applyStatus(ctx, booking, to)
}

func (se *DefaultSchedulingEngine) applyStatus(ctx context.Context, booking *models.Booking, status string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := se.Bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	if err := se.ReconcileDay(ctx, booking.FacilityID, booking.Date); err != nil {
		logger.Error("reconcile after status change failed",
			zap.String("bookingID", booking.ID), zap.String("status", status), zap.Error(err))
	}
	se.enqueueReconcile(booking.FacilityID, booking.Date)

	return booking, nil
}

// ReconcileDay recomputes derived slot flags for a facility/day and
// stores them back. A day without a schedule has nothing derived to
// store; its availability is always computed from bookings directly.
func (se *DefaultSchedulingEngine) ReconcileDay(ctx context.Context, facilityID, date string) error {
	sched, err := se.Schedules.GetByFacilityDate(ctx, facilityID, date)
	if err != nil {
		return err
	}
	se.invalidateScheduleCache(ctx, facilityID, date)
	if sched == nil {
		return nil
	}

	live, err := se.Bookings.ListLive(ctx, facilityID, date)
	if err != nil {
		return fmt.Errorf("failed to load live bookings: %w", err)
	}

	updated := ReconcileSlots(*sched, live)
	if err := se.Schedules.UpdateSlots(ctx, facilityID, date, updated.Slots); err != nil {
		return err
	}
	return nil
}

func (se *DefaultSchedulingEngine) DayAvailability(ctx context.Context, facilityID, date string) ([]models.DaySlotView, error) {
	if _, _, err := DayBoundaries(date); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, "invalid date, expected YYYY-MM-DD")
	}

	facility, err := se.Facilities.GetByID(ctx, facilityID)
	if err != nil {
		if err == facilityRepo.ErrNotFound {
			return nil, ErrFacilityUnavailable
		}
		return nil, fmt.Errorf("failed to load facility: %w", err)
	}

	sched, err := se.loadSchedule(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}
	if sched != nil && sched.IsHoliday {
		return []models.DaySlotView{}, nil
	}
	live, err := se.Bookings.ListLive(ctx, facilityID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load live bookings: %w", err)
	}

	// Explicit overrides narrow the day to exactly their slots.
	if sched != nil && len(sched.Slots) > 0 {
		views := make([]models.DaySlotView, 0, len(sched.Slots))
		for _, slot := range sched.Slots {
			view := models.DaySlotView{
				StartTime:         slot.StartTime,
				EndTime:           slot.EndTime,
				IsAvailable:       IsAvailable(facilityID, date, slot.StartTime, slot.EndTime, live, sched),
				UnavailableReason: slot.UnavailableReason,
				Currency:          facility.Currency,
			}
			view.Price = facility.HourlyPrice * float64(MinutesBetween(slot.StartTime, slot.EndTime)) / 60.0
			views = append(views, view)
		}
		return views, nil
	}

	// No overrides: enumerate the day window (special hours win over
	// the configured default).
	openAt, closeAt := se.DayOpen, se.DayClose
	if sched != nil && sched.SpecialHours != nil {
		openAt, closeAt = sched.SpecialHours.OpenTime, sched.SpecialHours.CloseTime
	}
	var views []models.DaySlotView
	for w := range SlotWindows(openAt, closeAt, se.SlotMinutes) {
		views = append(views, models.DaySlotView{
			StartTime:   w.Start,
			EndTime:     w.End,
			IsAvailable: IsAvailable(facilityID, date, w.Start, w.End, live, sched),
			Price:       facility.HourlyPrice * float64(se.SlotMinutes) / 60.0,
			Currency:    facility.Currency,
		})
	}
	return views, nil
}

func (se *DefaultSchedulingEngine) DefineSchedule(ctx context.Context, sched *models.Schedule) error {
	for _, slot := range sched.Slots {
		if v := ValidateRange(sched.Date, slot.StartTime, slot.EndTime); !v.OK {
			return fmt.Errorf("%w: slot %s-%s: %s", ErrInvalidRange, slot.StartTime, slot.EndTime, v.Reason)
		}
	}
	// A schedule's presence narrows the day to the union of its slots,
	// so a special-hours-only schedule materializes its window as slots;
	// otherwise defining special hours would close the day entirely.
	if len(sched.Slots) == 0 && sched.SpecialHours != nil {
		for w := range SlotWindows(sched.SpecialHours.OpenTime, sched.SpecialHours.CloseTime, se.SlotMinutes) {
			sched.Slots = append(sched.Slots, models.ScheduleSlot{
				StartTime:   w.Start,
				EndTime:     w.End,
				IsAvailable: true,
			})
		}
	}
	if sched.ID == "" {
		sched.ID = uuid.New().String()
	}
	if err := se.Schedules.Create(ctx, sched); err != nil {
		return err
	}
	se.invalidateScheduleCache(ctx, sched.FacilityID, sched.Date)
	return nil
}

func (se *DefaultSchedulingEngine) UpdateScheduleSlots(ctx context.Context, facilityID, date string, slots []models.ScheduleSlot) error {
	for _, slot := range slots {
		if v := ValidateRange(date, slot.StartTime, slot.EndTime); !v.OK {
			return fmt.Errorf("%w: slot %s-%s: %s", ErrInvalidRange, slot.StartTime, slot.EndTime, v.Reason)
		}
	}
	if err := se.Schedules.UpdateSlots(ctx, facilityID, date, slots); err != nil {
		return err
	}
	// Freshly written flags may disagree with live bookings; reconcile
	// immediately so reads stay consistent.
	return se.ReconcileDay(ctx, facilityID, date)
}

func (se *DefaultSchedulingEngine) SetHoliday(ctx context.Context, facilityID, date string, holiday bool) error {
	if err := se.Schedules.SetHoliday(ctx, facilityID, date, holiday); err != nil {
		return err
	}
	se.invalidateScheduleCache(ctx, facilityID, date)
	return nil
}

func (se *DefaultSchedulingEngine) SetSpecialHours(ctx context.Context, facilityID, date string, hours *models.HoursWindow) error {
	if hours != nil {
		if v := ValidateRange(date, hours.OpenTime, hours.CloseTime); !v.OK {
			return fmt.Errorf("%w: %s", ErrInvalidRange, v.Reason)
		}
	}
	if err := se.Schedules.SetSpecialHours(ctx, facilityID, date, hours); err != nil {
		return err
	}
	se.invalidateScheduleCache(ctx, facilityID, date)
	return nil
}

// loadSchedule reads the schedule snapshot through the redis cache when
// one is configured.
func (se *DefaultSchedulingEngine) loadSchedule(ctx context.Context, facilityID, date string) (*models.Schedule, error) {
	if se.Cache == nil {
		return se.Schedules.GetByFacilityDate(ctx, facilityID, date)
	}

	key := scheduleCacheKey(facilityID, date)
	cached, err := se.Cache.Get(ctx, key).Result()
	if err == nil {
		var sched models.Schedule
		if jsonErr := json.Unmarshal([]byte(cached), &sched); jsonErr == nil {
			return &sched, nil
		}
	}

	sched, err := se.Schedules.GetByFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}
	if sched != nil {
		if data, jsonErr := json.Marshal(sched); jsonErr == nil {
			_ = se.Cache.Set(ctx, key, data, scheduleCacheTTL).Err()
		}
	}
	return sched, nil
}

func (se *DefaultSchedulingEngine) invalidateScheduleCache(ctx context.Context, facilityID, date string) {
	if se.Cache == nil {
		return
	}
	_ = se.Cache.Del(ctx, scheduleCacheKey(facilityID, date)).Err()
}

func (se *DefaultSchedulingEngine) enqueueReconcile(facilityID, date string) {
	if se.Tasks == nil {
		return
	}
	logger := utils.GetLogger()
	payload, err := json.Marshal(ReconcilePayload{FacilityID: facilityID, Date: date})
	if err != nil {
		return
	}
	task := asynq.NewTask(TypeScheduleReconcile, payload)
	if _, err := se.Tasks.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		logger.Warn("failed to enqueue reconcile task",
			zap.String("facilityID", facilityID), zap.String("date", date), zap.Error(err))
	}
}

func scheduleCacheKey(facilityID, date string) string {
	return fmt.Sprintf("schedule:%s:%s", facilityID, date)
}

// newBookingCode mints the opaque external identifier carried on entry
// tokens and shown to users.
func newBookingCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "FB-" + raw[:10]
}
