package models

type GatePassRequestModel struct {
	ID                string `gorm:"primaryKey;size:32"`
	RequesterID       string `gorm:"size:32;not null;index"`
	RequesterName     string `gorm:"size:100;not null"`
	RequesterEmail    string `gorm:"size:255;not null"`
	RequesterPhone    string `gorm:"size:30;not null"`
	Purpose           string `gorm:"type:text;not null"`
	Department        string `gorm:"size:50;not null;index"`
	VisitDate         string `gorm:"size:10;not null;index"`
	VisitTime         string `gorm:"size:5;not null"`
	Duration          string `gorm:"size:20;not null"`
	VehicleNumber     string `gorm:"size:20"`
	Status            string `gorm:"size:20;not null;index"`
	SecurityComment   string `gorm:"type:text"`
	DepartmentComment string `gorm:"type:text"`
	ApprovedBy        string `gorm:"size:100"`
	Credential        string `gorm:"type:text"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (GatePassRequestModel) TableName() string {
	return "gate_pass_requests"
}
