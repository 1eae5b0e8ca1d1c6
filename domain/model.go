package domain

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=60"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty" validate:"omitempty,printascii,max=30"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,printascii,max=30"`
	Timestamp int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

type UserRole string

const (
	Guest = "guest"
	Host  = "host"
	Admin = "admin"
)

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Host        string             `bson:"host,omitempty" json:"host,omitempty"`
}

// GuestInfo is the guest identity embedded in a booking.
type GuestInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

type Booking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Guest    GuestInfo          `bson:"guest,omitempty" json:"guest,omitempty"`
	Host     string             `bson:"host,omitempty" json:"host,omitempty"`
	RoomID   string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
	Rent     float64            `bson:"rent,omitempty" json:"rent,omitempty"`
	From     string             `bson:"from,omitempty" json:"from,omitempty"`
	To       string             `bson:"to,omitempty" json:"to,omitempty"`
}

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	By          string             `bson:"by,omitempty" json:"by,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func (user *User) Validate() error {
	validate := validator.New()
	return validate.Struct(user)
}

func (user *User) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(user)
}

func (user *User) ToJSON(writer io.Writer) error {
	e := json.NewEncoder(writer)
	return e.Encode(user)
}

func (booking *Booking) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(booking)
}

func (booking *Booking) ToJSON(writer io.Writer) error {
	e := json.NewEncoder(writer)
	return e.Encode(booking)
}

func (announcement *Announcement) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(announcement)
}
