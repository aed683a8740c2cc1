package systems

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	cfg "github.com/XQwart/fkpg-jmp-fix/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SaveGameKey is the store item holding the saved game
const SaveGameKey = "savegame"

// SaveData is the player's progress: position, health and level
type SaveData struct {
	X       float64
	Y       float64
	Health  int
	LevelID string
}

// OpenStore opens the per-user data directory for appName
func OpenStore(appName string) (cfg.Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	return m, nil
}

// EncodeSave renders s as "x y health [levelID]"
func EncodeSave(s SaveData) []byte {
	fields := []string{
		strconv.FormatFloat(s.X, 'f', -1, 64),
		strconv.FormatFloat(s.Y, 'f', -1, 64),
		strconv.Itoa(s.Health),
	}
	if s.LevelID != "" {
		fields = append(fields, s.LevelID)
	}
	return []byte(strings.Join(fields, " "))
}

// DecodeSave parses a save item. Anything missing or malformed is reported
// as no save (nil), never as an error.
func DecodeSave(data []byte) *SaveData {
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return nil
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil
	}
	if !isFinite(x) || !isFinite(y) {
		return nil
	}
	health, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil
	}

	s := &SaveData{X: x, Y: y, Health: health}
	if len(fields) >= 4 {
		s.LevelID = fields[3]
	}
	return s
}

// LoadGame reads the saved game from store. Read failures are logged and
// treated like a missing save.
func LoadGame(store cfg.Store, logger *zap.Logger) *SaveData {
	if store == nil {
		return nil
	}
	data, err := store.LoadItem(SaveGameKey)
	if err != nil {
		logger.Warn("could not load saved game", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	s := DecodeSave(data)
	if s == nil {
		logger.Warn("saved game is malformed, ignoring it", zap.ByteString("data", data))
	}
	return s
}

// SaveGame writes s to store
func SaveGame(store cfg.Store, s SaveData) error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(SaveGameKey, EncodeSave(s)); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// ClearGame removes the saved game
func ClearGame(store cfg.Store) error {
	if store == nil {
		return nil
	}
	if err := store.DeleteItem(SaveGameKey); err != nil {
		return fmt.Errorf("failed to clear saved game: %w", err)
	}
	return nil
}

// HasSaveGame returns true if a readable saved game exists
func HasSaveGame(store cfg.Store) bool {
	if store == nil {
		return false
	}
	data, err := store.LoadItem(SaveGameKey)
	if err != nil || len(data) == 0 {
		return false
	}
	return DecodeSave(data) != nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
