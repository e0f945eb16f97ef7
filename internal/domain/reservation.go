package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed        ReservationStatus = "confirmed"
	StatusCancelledByUser  ReservationStatus = "cancelled_by_user"
	StatusCancelledByAdmin ReservationStatus = "cancelled_by_admin"
)

// Reservation represents a confirmed room booking in the ledger
type Reservation struct {
	ID              int64
	RoomID          int64
	UserID          int64
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          ReservationStatus

	// Denormalized data for history
	RoomName    string
	HourlyPrice float64
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation participates in conflict checks
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByAdmin
}

// CanBeCancelled returns true if the reservation can still be cancelled
// Отмена - односторонний переход: отменённое бронирование не реактивируется
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// Slot returns the reservation's time slot
func (r *Reservation) Slot() TimeSlot {
	return TimeSlot{StartTime: r.StartTime, EndTime: r.EndTime}
}

// RoomReservationsFilter фильтр для получения бронирований переговорной
type RoomReservationsFilter struct {
	RoomID           int64              // Обязательный параметр
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые бронирования
}
