package models

import (
	"encoding/json"
)

// Remark is one reviewer/filer message on a filing thread. ReadBy holds the
// ids of users who have seen it; the author is always counted as having read
// their own remark.
type Remark struct {
	UserID   int64   `json:"user_id"`
	UserName string  `json:"user_name,omitempty"`
	Message  string  `json:"message"`
	Datetime string  `json:"datetime,omitempty"`
	ReadBy   []int64 `json:"read_by"`
}

// ParseRemarks decodes a remarks field that may arrive either as a JSON
// array or as a JSON-encoded string of one. Anything undecodable yields an
// empty list rather than an error; a remark with no read_by defaults to
// having been read by its author only.
func ParseRemarks(raw json.RawMessage) []Remark {
	if len(raw) == 0 {
		return nil
	}

	data := []byte(raw)
	// The backend stores remarks as TEXT, so the field usually arrives as a
	// string containing JSON.
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		data = []byte(asString)
	}

	var remarks []Remark
	if err := json.Unmarshal(data, &remarks); err != nil {
		return nil
	}
	for i := range remarks {
		if remarks[i].ReadBy == nil {
			remarks[i].ReadBy = []int64{remarks[i].UserID}
		}
	}
	return remarks
}

// EncodeRemarks serializes a remark list back into the string-wrapped form
// the backend expects on update.
func EncodeRemarks(remarks []Remark) (string, error) {
	if remarks == nil {
		remarks = []Remark{}
	}
	data, err := json.Marshal(remarks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadByUser reports whether the remark has been read by the given user.
// A user's own remarks always count as read.
func (r Remark) ReadByUser(userID int64) bool {
	if r.UserID == userID {
		return true
	}
	for _, id := range r.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// MarkRead returns a copy of the remark with userID appended to ReadBy when
// absent.
func (r Remark) MarkRead(userID int64) Remark {
	if r.ReadByUser(userID) {
		return r
	}
	out := r
	out.ReadBy = append(append([]int64{}, r.ReadBy...), userID)
	return out
}
