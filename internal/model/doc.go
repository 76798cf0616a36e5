package model

// Package model defines the records exchanged with the clinic backend: users
// and sessions, appointments, prescriptions, patient health info and chat
// messages. The backend owns every entity; the client keeps transient copies
// for display and derives only presentation values (names, dates, rooms).
