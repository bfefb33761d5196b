package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type CreateCaseRequest struct {
	CaseReference string `json:"case_reference"`
	MemberNumber  string `json:"member_number"`
	Name          string `json:"name"`
	JoinDate      string `json:"join_date"`
	Employer      string `json:"employer"`
	Workplace     string `json:"workplace"`
	Address       string `json:"address"`
	Postcode      string `json:"postcode"`
	JobTitle      string `json:"job_title"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Issue         string `json:"issue"`
	CaseType      string `json:"case_type"`
	Priority      string `json:"priority"`
}

type ParseCaseRequest struct {
	Text string `json:"text"`
}

type UpdateCaseRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Issue    *string `json:"issue"`
	Deadline *string `json:"deadline"`
}

type CaseResponse struct {
	ID             string `json:"id"`
	CaseReference  string `json:"case_reference"`
	MemberNumber   string `json:"member_number"`
	Name           string `json:"name"`
	JoinDate       string `json:"join_date"`
	Employer       string `json:"employer"`
	Workplace      string `json:"workplace"`
	Address        string `json:"address"`
	Postcode       string `json:"postcode"`
	JobTitle       string `json:"job_title"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Issue          string `json:"issue"`
	CaseType       string `json:"case_type"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	CreatedDate    string `json:"created_date"`
	Deadline       string `json:"deadline"`
	DeadlineStatus string `json:"deadline_status"`
	DeadlineLabel  string `json:"deadline_label"`
}

type CreateCaseResponse struct {
	Case CaseResponse `json:"case"`
}

type ListCasesResponse struct {
	Cases []CaseResponse `json:"cases"`
}

type HospitalRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type HospitalResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type ListHospitalsResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
}

type MeetingRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Attendees string `json:"attendees"`
	Notes     string `json:"notes"`
}

type MeetingResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Attendees string `json:"attendees"`
	Notes     string `json:"notes"`
}

type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

type DocumentRequest struct {
	CaseID string `json:"case_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type DocumentResponse struct {
	ID        string `json:"id"`
	CaseID    string `json:"case_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

type TeamUpdateRequest struct {
	CaseID  string `json:"case_id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type TeamUpdateResponse struct {
	ID        string `json:"id"`
	CaseID    string `json:"case_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ListTeamUpdatesResponse struct {
	Updates []TeamUpdateResponse `json:"updates"`
}

type StatsResponse struct {
	Urgent   int `json:"urgent"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}
