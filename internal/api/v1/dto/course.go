package dto

// CourseModifyDTO is the request body for both course creation and the
// full-replacement update. The owning user is never taken from the body.
type CourseModifyDTO struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// CourseOwnerDTO is the owner embedded in course output, stripped of the
// password hash and timestamps.
type CourseOwnerDTO struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type CourseResponseDTO struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	EstimatedTime   string         `json:"estimatedTime"`
	MaterialsNeeded string         `json:"materialsNeeded"`
	UserID          int            `json:"userId"`
	CourseUser      CourseOwnerDTO `json:"courseUser"`
}
