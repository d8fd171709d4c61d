package handler

import (
	"time"

	"urjabandhu/internal/domain/entity"

	"github.com/google/uuid"
)

// JSON views of the domain entities. Entities carry no wire tags; these
// structs are the API contract.

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.Roles.Strings(),
		CreatedAt: u.CreatedAt,
	}
}

type ProfileView struct {
	UserID                  uuid.UUID                      `json:"user_id"`
	FullName                string                         `json:"full_name"`
	Phone                   string                         `json:"phone"`
	Address                 string                         `json:"address"`
	City                    string                         `json:"city"`
	State                   string                         `json:"state"`
	Pincode                 string                         `json:"pincode"`
	NotificationPreferences entity.NotificationPreferences `json:"notification_preferences"`
	EnergyRate              float64                        `json:"energy_rate"`
	Currency                string                         `json:"currency"`
	Theme                   entity.Theme                   `json:"theme"`
	Language                string                         `json:"language"`
	PushEnabled             bool                           `json:"push_enabled"`
	UpdatedAt               time.Time                      `json:"updated_at"`
}

func toProfileView(p *entity.Profile) *ProfileView {
	return &ProfileView{
		UserID:                  p.UserID,
		FullName:                p.FullName,
		Phone:                   p.Phone,
		Address:                 p.Address,
		City:                    p.City,
		State:                   p.State,
		Pincode:                 p.Pincode,
		NotificationPreferences: p.NotificationPreferences,
		EnergyRate:              p.EnergyRate,
		Currency:                p.Currency,
		Theme:                   p.Theme,
		Language:                p.Language,
		PushEnabled:             p.WantsPush(),
		UpdatedAt:               p.UpdatedAt,
	}
}

type DeviceView struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	Type               entity.DeviceType   `json:"type"`
	Brand              string              `json:"brand"`
	Model              string              `json:"model"`
	PowerRating        float64             `json:"power_rating"`
	Status             entity.DeviceStatus `json:"status"`
	Location           string              `json:"location"`
	EfficiencyScore    int                 `json:"efficiency_score"`
	CurrentConsumption float64             `json:"current_consumption"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func toDeviceView(d *entity.Device) *DeviceView {
	return &DeviceView{
		ID:                 d.ID,
		Name:               d.Name,
		Type:               d.Type,
		Brand:              d.Brand,
		Model:              d.Model,
		PowerRating:        d.PowerRating,
		Status:             d.Status,
		Location:           d.Location,
		EfficiencyScore:    d.EfficiencyScore,
		CurrentConsumption: d.CurrentConsumption,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

type DeviceControlView struct {
	DeviceID          uuid.UUID           `json:"device_id"`
	CanTurnOnOff      bool                `json:"can_turn_on_off"`
	CanSetPowerLevel  bool                `json:"can_set_power_level"`
	CanSchedule       bool                `json:"can_schedule"`
	CurrentState      entity.ControlState `json:"current_state"`
	CurrentPowerLevel int                 `json:"current_power_level"`
	LastCommandAt     *time.Time          `json:"last_command_at"`
}

func toDeviceControlView(dc *entity.DeviceControl) *DeviceControlView {
	return &DeviceControlView{
		DeviceID:          dc.DeviceID,
		CanTurnOnOff:      dc.CanTurnOnOff,
		CanSetPowerLevel:  dc.CanSetPowerLevel,
		CanSchedule:       dc.CanSchedule,
		CurrentState:      dc.CurrentState,
		CurrentPowerLevel: dc.CurrentPowerLevel,
		LastCommandAt:     dc.LastCommandAt,
	}
}

type ConnectionView struct {
	ID               uuid.UUID             `json:"id"`
	ConsumerNumber   string                `json:"consumer_number"`
	MeterNumber      string                `json:"meter_number"`
	ElectricityBoard string                `json:"electricity_board"`
	ConnectionType   entity.ConnectionType `json:"connection_type"`
	PhaseType        entity.PhaseType      `json:"phase_type"`
	SanctionedLoadKW float64               `json:"sanctioned_load_kw"`
	Address          string                `json:"address"`
	IsPrimary        bool                  `json:"is_primary"`
	CreatedAt        time.Time             `json:"created_at"`
}

func toConnectionView(cc *entity.ConsumerConnection) *ConnectionView {
	return &ConnectionView{
		ID:               cc.ID,
		ConsumerNumber:   cc.ConsumerNumber,
		MeterNumber:      cc.MeterNumber,
		ElectricityBoard: cc.ElectricityBoard,
		ConnectionType:   cc.ConnectionType,
		PhaseType:        cc.PhaseType,
		SanctionedLoadKW: cc.SanctionedLoadKW,
		Address:          cc.Address,
		IsPrimary:        cc.IsPrimary,
		CreatedAt:        cc.CreatedAt,
	}
}

type ConsumptionView struct {
	ID             uuid.UUID  `json:"id"`
	DeviceID       *uuid.UUID `json:"device_id"`
	RecordedAt     time.Time  `json:"recorded_at"`
	ConsumptionKWh float64    `json:"consumption_kwh"`
	Cost           float64    `json:"cost"`
	PeakDemandKW   float64    `json:"peak_demand_kw"`
}

func toConsumptionView(r *entity.ConsumptionRecord) *ConsumptionView {
	return &ConsumptionView{
		ID:             r.ID,
		DeviceID:       r.DeviceID,
		RecordedAt:     r.RecordedAt,
		ConsumptionKWh: r.ConsumptionKWh,
		Cost:           r.Cost,
		PeakDemandKW:   r.PeakDemandKW,
	}
}

type GoalView struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	GoalType     entity.GoalType   `json:"goal_type"`
	TargetValue  float64           `json:"target_value"`
	CurrentValue float64           `json:"current_value"`
	Unit         string            `json:"unit"`
	Period       entity.GoalPeriod `json:"period"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      *time.Time        `json:"end_date"`
	Status       entity.GoalStatus `json:"status"`
	Progress     float64           `json:"progress"`
}

func toGoalView(g *entity.EnergyGoal) *GoalView {
	return &GoalView{
		ID:           g.ID,
		Title:        g.Title,
		GoalType:     g.GoalType,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Period:       g.Period,
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		Status:       g.Status,
		Progress:     g.Progress(),
	}
}

type AlertView struct {
	ID         uuid.UUID            `json:"id"`
	AlertType  string               `json:"alert_type"`
	Severity   entity.AlertSeverity `json:"severity"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	DeviceID   *uuid.UUID           `json:"device_id"`
	IsRead     bool                 `json:"is_read"`
	IsResolved bool                 `json:"is_resolved"`
	CreatedAt  time.Time            `json:"created_at"`
}

func toAlertView(a *entity.EnergyAlert) *AlertView {
	return &AlertView{
		ID:         a.ID,
		AlertType:  a.AlertType,
		Severity:   a.Severity,
		Title:      a.Title,
		Message:    a.Message,
		DeviceID:   a.DeviceID,
		IsRead:     a.IsRead,
		IsResolved: a.IsResolved,
		CreatedAt:  a.CreatedAt,
	}
}

type RecommendationView struct {
	ID               uuid.UUID                   `json:"id"`
	Title            string                      `json:"title"`
	Description      string                      `json:"description"`
	Category         string                      `json:"category"`
	Priority         entity.Priority             `json:"priority"`
	PotentialSavings float64                     `json:"potential_savings"`
	Status           entity.RecommendationStatus `json:"status"`
	CreatedAt        time.Time                   `json:"created_at"`
}

func toRecommendationView(r *entity.Recommendation) *RecommendationView {
	return &RecommendationView{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		Priority:         r.Priority,
		PotentialSavings: r.PotentialSavings,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
	}
}

// RecommendationListView tags the list with its source so clients can badge
// fixture rows.
type RecommendationListView struct {
	Items  []*RecommendationView `json:"items"`
	Source entity.DataSource     `json:"source"`
}

type BillView struct {
	ID            uuid.UUID         `json:"id"`
	ConnectionID  *uuid.UUID        `json:"connection_id"`
	PeriodStart   time.Time         `json:"period_start"`
	PeriodEnd     time.Time         `json:"period_end"`
	UnitsConsumed float64           `json:"units_consumed"`
	Amount        float64           `json:"amount"`
	DueDate       *time.Time        `json:"due_date"`
	Status        entity.BillStatus `json:"status"`
}

func toBillView(b *entity.BillingData) *BillView {
	return &BillView{
		ID:            b.ID,
		ConnectionID:  b.ConnectionID,
		PeriodStart:   b.PeriodStart,
		PeriodEnd:     b.PeriodEnd,
		UnitsConsumed: b.UnitsConsumed,
		Amount:        b.Amount,
		DueDate:       b.DueDate,
		Status:        b.Status,
	}
}

type RuleView struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Conditions     []entity.RuleCondition `json:"conditions"`
	Actions        []entity.RuleAction    `json:"actions"`
	IsEnabled      bool                   `json:"is_enabled"`
	Priority       int                    `json:"priority"`
	TimeStart      string                 `json:"time_start,omitempty"`
	TimeEnd        string                 `json:"time_end,omitempty"`
	DaysOfWeek     []int                  `json:"days_of_week"`
	ExecutionCount int                    `json:"execution_count"`
	LastExecutedAt *time.Time             `json:"last_executed_at"`
	CreatedAt      time.Time              `json:"created_at"`
}

func toRuleView(r *entity.AutomationRule) *RuleView {
	return &RuleView{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Conditions:     nonNil(r.Conditions),
		Actions:        nonNil(r.Actions),
		IsEnabled:      r.IsEnabled,
		Priority:       r.Priority,
		TimeStart:      r.TimeStart,
		TimeEnd:        r.TimeEnd,
		DaysOfWeek:     nonNil(r.DaysOfWeek),
		ExecutionCount: r.ExecutionCount,
		LastExecutedAt: r.LastExecutedAt,
		CreatedAt:      r.CreatedAt,
	}
}

type ScheduleView struct {
	ID              uuid.UUID             `json:"id"`
	DeviceID        uuid.UUID             `json:"device_id"`
	Name            string                `json:"name"`
	Action          entity.ScheduleAction `json:"action"`
	PowerLevel      *int                  `json:"power_level"`
	ScheduleType    entity.ScheduleType   `json:"schedule_type"`
	ScheduledTime   string                `json:"scheduled_time"`
	DaysOfWeek      []int                 `json:"days_of_week"`
	RunAt           *time.Time            `json:"run_at"`
	IsEnabled       bool                  `json:"is_enabled"`
	NextExecutionAt *time.Time            `json:"next_execution_at"`
}

func toScheduleView(s *entity.DeviceSchedule) *ScheduleView {
	return &ScheduleView{
		ID:              s.ID,
		DeviceID:        s.DeviceID,
		Name:            s.Name,
		Action:          s.Action,
		PowerLevel:      s.PowerLevel,
		ScheduleType:    s.ScheduleType,
		ScheduledTime:   s.ScheduledTime,
		DaysOfWeek:      nonNil(s.DaysOfWeek),
		RunAt:           s.RunAt,
		IsEnabled:       s.IsEnabled,
		NextExecutionAt: s.NextExecutionAt,
	}
}

type AutomationLogView struct {
	ID              uuid.UUID         `json:"id"`
	RuleID          *uuid.UUID        `json:"rule_id"`
	DeviceID        *uuid.UUID        `json:"device_id"`
	ActionType      entity.ActionType `json:"action_type"`
	Status          entity.LogStatus  `json:"status"`
	Message         string            `json:"message"`
	ExecutionTimeMs int64             `json:"execution_time_ms"`
	Details         map[string]any    `json:"details"`
	ExecutedAt      time.Time         `json:"executed_at"`
}

func toAutomationLogView(l *entity.AutomationLog) *AutomationLogView {
	details := l.Details
	if details == nil {
		details = map[string]any{}
	}

	return &AutomationLogView{
		ID:              l.ID,
		RuleID:          l.RuleID,
		DeviceID:        l.DeviceID,
		ActionType:      l.ActionType,
		Status:          l.Status,
		Message:         l.Message,
		ExecutionTimeMs: l.ExecutionTimeMs,
		Details:         details,
		ExecutedAt:      l.ExecutedAt,
	}
}

type NotificationView struct {
	ID        uuid.UUID               `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	Category  string                  `json:"category"`
	IsRead    bool                    `json:"is_read"`
	ActionURL string                  `json:"action_url,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func toNotificationView(n *entity.UserNotification) *NotificationView {
	return &NotificationView{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Category:  n.Category,
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}

// mapViews converts a list, always yielding a non-nil slice.
func mapViews[E any, V any](items []E, view func(E) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}

	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
