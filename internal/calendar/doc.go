// Package calendar exports bin collection dates as an iCalendar feed.
package calendar
