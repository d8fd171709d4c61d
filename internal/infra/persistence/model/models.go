// Package model holds the GORM persistence structs. They never leave the infra layer.
package model

// All returns every model in dependency order, for auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&DeviceModel{},
		&DeviceControlModel{},
		&ConsumerConnectionModel{},
		&AutomationRuleModel{},
		&DeviceScheduleModel{},
		&AutomationLogModel{},
		&UserNotificationModel{},
		&ConsumptionRecordModel{},
		&EnergyGoalModel{},
		&EnergyAlertModel{},
		&RecommendationModel{},
		&BillingDataModel{},
	}
}
