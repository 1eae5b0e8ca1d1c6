package domain

import "context"

type AnnouncementStore interface {
	Insert(ctx context.Context, announcement *Announcement) (*Announcement, error)
	GetAll(ctx context.Context) ([]*Announcement, error)
}
