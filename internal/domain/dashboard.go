package domain

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type AdminStats struct {
	TotalStudents        int64           `json:"total_students"`
	TotalClubs           int64           `json:"total_clubs"`
	TotalActivities      int64           `json:"total_activities"`
	TotalRegistrations   int64           `json:"total_registrations"`
	PendingClubs         int64           `json:"pending_clubs"`
	ClubsByCategory      []CategoryCount `json:"clubs_by_category"`
	ActivitiesByCategory []CategoryCount `json:"activities_by_category"`
	RegistrationsByMonth []MonthCount    `json:"registrations_by_month"`
}

type ManagerStats struct {
	Clubs           []Club `json:"clubs"`
	ClubsCount      int    `json:"clubs_count"`
	TotalMembers    int    `json:"total_members"`
	TotalActivities int    `json:"total_activities"`
}

type StudentStats struct {
	ClubsJoined      int `json:"clubs_joined"`
	ActivitiesJoined int `json:"activities_joined"`
}

type Dashboard struct {
	Role               Role          `json:"role"`
	Admin              *AdminStats   `json:"admin,omitempty"`
	Manager            *ManagerStats `json:"manager,omitempty"`
	Student            *StudentStats `json:"student,omitempty"`
	UpcomingActivities []Activity    `json:"upcoming_activities"`
	PopularClubs       []Club        `json:"popular_clubs"`
}
