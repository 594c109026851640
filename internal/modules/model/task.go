package model

import (
	"time"

	"github.com/google/uuid"
)

// DaysInRow is the fixed number of day columns on a task row. Days 29-31
// are stored even for shorter months; there is no calendar validation.
const DaysInRow = 31

// Task is one quartier/type/month work record with 31 daily counts and a
// derived total. Total is never set directly: every write path recomputes
// it from the day columns via ComputeTotal.
type Task struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskTypeID uuid.UUID `gorm:"type:uuid;not null;index" json:"task_type_id"`
	TaskType   *TaskType `gorm:"foreignKey:TaskTypeID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	Quartier string `gorm:"type:varchar(200);not null" json:"quartier"`
	// Date is the normalized "YYYY-MM" month the row belongs to.
	Date string `gorm:"type:char(7);not null;index" json:"date"`

	Jour1  int `gorm:"column:jour_1;not null;default:0" json:"jour_1"`
	Jour2  int `gorm:"column:jour_2;not null;default:0" json:"jour_2"`
	Jour3  int `gorm:"column:jour_3;not null;default:0" json:"jour_3"`
	Jour4  int `gorm:"column:jour_4;not null;default:0" json:"jour_4"`
	Jour5  int `gorm:"column:jour_5;not null;default:0" json:"jour_5"`
	Jour6  int `gorm:"column:jour_6;not null;default:0" json:"jour_6"`
	Jour7  int `gorm:"column:jour_7;not null;default:0" json:"jour_7"`
	Jour8  int `gorm:"column:jour_8;not null;default:0" json:"jour_8"`
	Jour9  int `gorm:"column:jour_9;not null;default:0" json:"jour_9"`
	Jour10 int `gorm:"column:jour_10;not null;default:0" json:"jour_10"`
	Jour11 int `gorm:"column:jour_11;not null;default:0" json:"jour_11"`
	Jour12 int `gorm:"column:jour_12;not null;default:0" json:"jour_12"`
	Jour13 int `gorm:"column:jour_13;not null;default:0" json:"jour_13"`
	Jour14 int `gorm:"column:jour_14;not null;default:0" json:"jour_14"`
	Jour15 int `gorm:"column:jour_15;not null;default:0" json:"jour_15"`
	Jour16 int `gorm:"column:jour_16;not null;default:0" json:"jour_16"`
	Jour17 int `gorm:"column:jour_17;not null;default:0" json:"jour_17"`
	Jour18 int `gorm:"column:jour_18;not null;default:0" json:"jour_18"`
	Jour19 int `gorm:"column:jour_19;not null;default:0" json:"jour_19"`
	Jour20 int `gorm:"column:jour_20;not null;default:0" json:"jour_20"`
	Jour21 int `gorm:"column:jour_21;not null;default:0" json:"jour_21"`
	Jour22 int `gorm:"column:jour_22;not null;default:0" json:"jour_22"`
	Jour23 int `gorm:"column:jour_23;not null;default:0" json:"jour_23"`
	Jour24 int `gorm:"column:jour_24;not null;default:0" json:"jour_24"`
	Jour25 int `gorm:"column:jour_25;not null;default:0" json:"jour_25"`
	Jour26 int `gorm:"column:jour_26;not null;default:0" json:"jour_26"`
	Jour27 int `gorm:"column:jour_27;not null;default:0" json:"jour_27"`
	Jour28 int `gorm:"column:jour_28;not null;default:0" json:"jour_28"`
	Jour29 int `gorm:"column:jour_29;not null;default:0" json:"jour_29"`
	Jour30 int `gorm:"column:jour_30;not null;default:0" json:"jour_30"`
	Jour31 int `gorm:"column:jour_31;not null;default:0" json:"jour_31"`

	Total int `gorm:"not null;default:0" json:"total"`

	CreatedBy *uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
	Creator   *Account   `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"is_deleted"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) dayPtrs() [DaysInRow]*int {
	return [DaysInRow]*int{
		&t.Jour1, &t.Jour2, &t.Jour3, &t.Jour4, &t.Jour5, &t.Jour6, &t.Jour7,
		&t.Jour8, &t.Jour9, &t.Jour10, &t.Jour11, &t.Jour12, &t.Jour13, &t.Jour14,
		&t.Jour15, &t.Jour16, &t.Jour17, &t.Jour18, &t.Jour19, &t.Jour20, &t.Jour21,
		&t.Jour22, &t.Jour23, &t.Jour24, &t.Jour25, &t.Jour26, &t.Jour27, &t.Jour28,
		&t.Jour29, &t.Jour30, &t.Jour31,
	}
}

// Days returns the 31 day columns in order.
func (t *Task) Days() [DaysInRow]int {
	var days [DaysInRow]int
	for i, p := range t.dayPtrs() {
		days[i] = *p
	}
	return days
}

// SetDays assigns the 31 day columns and recomputes Total so the
// total == sum(days) invariant holds on every write path.
func (t *Task) SetDays(days [DaysInRow]int) {
	for i, p := range t.dayPtrs() {
		*p = days[i]
	}
	t.Total = ComputeTotal(days)
}

// ClampDays coerces negative day counts to zero. Non-numeric form input is
// coerced to zero before it reaches this function.
func ClampDays(days [DaysInRow]int) [DaysInRow]int {
	for i, v := range days {
		if v < 0 {
			days[i] = 0
		}
	}
	return days
}

// ComputeTotal is the single definition of the derived total.
func ComputeTotal(days [DaysInRow]int) int {
	total := 0
	for _, v := range days {
		total += v
	}
	return total
}
