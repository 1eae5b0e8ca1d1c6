package domain

import "context"

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	GetOneByGuestEmail(ctx context.Context, email string) (*Booking, error)
	GetByGuestEmail(ctx context.Context, email string) ([]*Booking, error)
	GetByHostEmail(ctx context.Context, email string) ([]*Booking, error)
}
