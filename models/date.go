package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component. It renders as an ISO
// date string on the wire and maps onto a DATE column.
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

func (d *Date) UnmarshalJSON(input []byte) error {
	if d == nil {
		d = new(Date)
	}
	strInput := string(input)
	strInput = strings.Trim(strInput, `"`)
	buf, err := time.Parse(dateLayout, strInput)
	if err == nil {
		*d = Date(buf)
	}
	return err
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		buf, err := time.Parse(dateLayout, string(v))
		if err == nil {
			*d = Date(buf)
		}
		return err
	case string:
		buf, err := time.Parse(dateLayout, v)
		if err == nil {
			*d = Date(buf)
		}
		return err
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
