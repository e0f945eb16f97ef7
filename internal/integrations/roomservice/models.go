package roomservice

// Room модель переговорной из RoomService
type Room struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Capacity     int          `json:"capacity"`
	HourlyPrice  float64      `json:"hourly_price"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// WeekSchedule расписание работы переговорной по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы на один день
// OpenTime/CloseTime в формате "HH:MM"; nil при IsOpen = false
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

// ErrorResponse модель ошибки от RoomService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
