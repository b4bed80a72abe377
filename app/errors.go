package app

import "github.com/HSellappan/RailFocus-sub001/internal/apperr"

var (
	errInvalidPeriod = &apperr.Error{
		Message: "invalid time period: %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid date: %s",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}
)
