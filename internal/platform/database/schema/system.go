// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SettingTable represents the 'settings' table
type SettingTable struct {
	Table       string
	ID          string
	Key         string
	Value       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// Setting is the schema definition for settings
var Setting = SettingTable{
	Table:       "settings",
	ID:          "id",
	Key:         "key",
	Value:       "value",
	Description: "description",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// VisitorTable represents the 'visitors' table
type VisitorTable struct {
	Table       string
	ID          string
	IPAddress   string
	UserAgent   string
	VisitedDate string
	VisitCount  string
	CreatedAt   string
	UpdatedAt   string
}

// Visitor is the schema definition for visitors
var Visitor = VisitorTable{
	Table:       "visitors",
	ID:          "id",
	IPAddress:   "ip_address",
	UserAgent:   "user_agent",
	VisitedDate: "visited_date",
	VisitCount:  "visit_count",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// AdminUserTable represents the 'admin_users' table
type AdminUserTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     string
	LastLoginAt  string
	CreatedAt    string
	UpdatedAt    string
}

// AdminUser is the schema definition for admin_users
var AdminUser = AdminUserTable{
	Table:        "admin_users",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	PasswordHash: "password_hash",
	Role:         "role",
	IsActive:     "is_active",
	LastLoginAt:  "last_login_at",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
