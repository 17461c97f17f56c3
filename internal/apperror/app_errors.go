package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("position is outside the board")
	ErrInvalidMark  = errors.New("invalid player mark")
)
