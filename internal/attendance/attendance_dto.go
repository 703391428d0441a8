package attendance

import "encoding/json"

// BulkRecordRequest is deliberately unvalidated: malformed entries are dropped
// by the service instead of failing the batch.
type BulkRecordRequest struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

// UnmarshalJSON never fails. A field of the wrong type, or an element that is
// not an object, decodes to its zero value so the record is skipped later.
func (r *BulkRecordRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		StudentID json.RawMessage `json:"studentId"`
		Status    json.RawMessage `json:"status"`
	}
	*r = BulkRecordRequest{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	_ = json.Unmarshal(raw.StudentID, &r.StudentID)
	_ = json.Unmarshal(raw.Status, &r.Status)
	return nil
}

type BulkMarkRequest struct {
	Date    string              `json:"date"`
	Records []BulkRecordRequest `json:"records"`
}

type BulkMarkResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Written int    `json:"written"`
}

type DailySheetQuery struct {
	Date      string `form:"date"`
	ClassName string `form:"className"`
	Section   string `form:"section"`
}

type DailyMarkResponse struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	Roll        string `json:"roll,omitempty"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
