package entity

// Department groups doctors by medical discipline
type Department struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

// Qualification is a medical degree a doctor holds
type Qualification struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(300);uniqueIndex;not null" json:"name"`
	Title string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
}

func (Qualification) TableName() string {
	return "qualifications"
}

// Collection groups lab tests into a browsable category
type Collection struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	FeaturedTestID *int   `gorm:"index" json:"featured_test_id,omitempty"`

	// Relationships
	Tests []Test `gorm:"foreignKey:CollectionID" json:"tests,omitempty"`
}

func (Collection) TableName() string {
	return "collections"
}
