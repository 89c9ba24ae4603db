package api_dto

type Center struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	AltPhone  string     `json:"alt_phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Street    string     `json:"street,omitempty"`
	City      string     `json:"city,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Doctors   []Doctor   `json:"doctors,omitempty"`
	Schedules []Schedule `json:"schedules,omitempty"`
}

// Schedule is one weekly operating window of a center. Day is a lowercase
// English weekday name and the times are local wall clock HH:MM[:SS].
type Schedule struct {
	ID        int    `json:"id"`
	CenterID  int    `json:"center_id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

type Doctor struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// FindCenter returns the center with the given id from a center list.
func FindCenter(centers []Center, centerID int) (Center, bool) {
	for _, center := range centers {
		if center.ID == centerID {
			return center, true
		}
	}
	return Center{}, false
}
