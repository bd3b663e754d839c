package response

import "github.com/campuslife/campus-api/internal/domain"

// Activity adds the seat figures clients display next to an activity.
type Activity struct {
	domain.Activity
	PlacesLeft int  `json:"places_left"`
	IsFull     bool `json:"is_full"`
}

type ActivityDetail struct {
	Activity
	IsRegistered bool `json:"is_registered"`
}

type ParticipantList struct {
	ActivityID   uint                 `json:"activity_id"`
	Participants []domain.Participant `json:"participants"`
}

func NewActivity(a domain.Activity) Activity {
	return Activity{
		Activity:   a,
		PlacesLeft: a.PlacesLeft(),
		IsFull:     a.IsFull(),
	}
}

func NewActivities(activities []domain.Activity) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivity(a))
	}

	return out
}
