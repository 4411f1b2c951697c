// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route paths.
const (
	RouteHome        = "/"
	RouteAbout       = "/about"
	RouteServices    = "/services"
	RouteContact     = "/contact"
	RouteBooking     = "/booking"
	RouteLogin       = "/login"
	RouteLogout      = "/logout"
	RouteAdmin       = "/admin"
	RouteAdminExport = "/admin/export"
	RouteAPIBookings = "/api/bookings"
	RouteDelete      = "/delete/{id}"
	RouteHealth      = "/health"
	RouteHealthLive  = "/health/live"
	RouteMetrics     = "/metrics"
	RouteRobots      = "/robots.txt"
	RouteStatic      = "/static/*"
)

// Template names.
const (
	templateHome      = "pages/home"
	templateAbout     = "pages/about"
	templateServices  = "pages/services"
	templateContact   = "pages/contact"
	templateBooking   = "pages/booking"
	templateLogin     = "auth/login"
	templateDashboard = "admin/dashboard"
)

// User-visible notices.
const (
	msgBooked         = "Thank you %s! Your event has been booked."
	msgLoggedIn       = "Logged in successfully!"
	msgLoggedOut      = "Logged out successfully."
	msgBadCredentials = "Invalid credentials!"
	msgDeleted        = "Booking deleted successfully!"
	msgInvalidForm    = "Invalid form data"
)

// recentEventsLimit is how many audit events the dashboard shows.
const recentEventsLimit = 20
