package errors

import "net/http"

var (
	ErrGeocodeUnavailable = New(
		"GEOCODE_UNAVAILABLE",
		"Could not resolve an address for the given location",
		http.StatusBadGateway,
	)

	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route found between the specified origin and destination",
		http.StatusNotFound,
	)

	ErrMalformedPolyline = New(
		"MALFORMED_POLYLINE",
		"Encoded polyline is malformed",
		http.StatusUnprocessableEntity,
	)

	ErrTransitNotFound = New(
		"TRANSIT_NOT_FOUND",
		"Transit record with the provided ID does not exist or does not belong to the user",
		http.StatusNotFound,
	)

	ErrWheelchairNotFound = New(
		"WHEELCHAIR_NOT_FOUND",
		"The specified wheelchair ID does not exist",
		http.StatusNotFound,
	)

	ErrInvalidTransition = New(
		"INVALID_TRANSITION",
		"Transit is already finished",
		http.StatusConflict,
	)

	ErrNoNearbyMarker = New(
		"NO_NEARBY_MARKER",
		"No nearby marker found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid user reference",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)
