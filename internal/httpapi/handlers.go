package httpapi

import (
	"errors"

	"github.com/valyala/fasthttp"

	"github.com/vovakirdan/squarecontrol/internal/catalog"
	"github.com/vovakirdan/squarecontrol/internal/config"
	"github.com/vovakirdan/squarecontrol/internal/level"
	"github.com/vovakirdan/squarecontrol/internal/session"
)

// --- levels ---

type levelResp struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Tag       string      `json:"tag,omitempty"`
	Completed bool        `json:"isCompleted"`
	Summary   string      `json:"summary"`
	Level     level.Level `json:"level"`
}

func (s *Server) completed() map[string]bool {
	if s.progress == nil {
		return map[string]bool{}
	}
	ctx, cancel := s.storeContext()
	defer cancel()
	state, err := s.progress.State(ctx)
	if err != nil {
		s.logger.Warn("could not load progress", "error", err)
		return map[string]bool{}
	}
	return state
}

func (s *Server) handleLevels(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.catalog.Summaries(s.completed()))
}

func (s *Server) handleLevel(ctx *fasthttp.RequestCtx, id string) {
	def, err := s.catalog.Get(id)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}
	lvl, err := def.Build()
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, levelResp{
		ID:        def.ID,
		Name:      def.Name,
		Type:      catalog.LevelType,
		Tag:       def.Tag,
		Completed: s.completed()[def.ID],
		Summary:   level.Summary(lvl),
		Level:     lvl,
	})
}

// --- generate ---

// generateReq is a level.Options document plus an optional difficulty
// preset that replaces the board and piece options.
type generateReq struct {
	level.Options
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResp struct {
	Seed     int64       `json:"seed"`
	Summary  string      `json:"summary"`
	Level    level.Level `json:"level"`
	Solution level.Level `json:"solution"`
}

func (s *Server) handleGenerate(ctx *fasthttp.RequestCtx) {
	var req generateReq
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	opts := req.Options
	if req.Difficulty != "" {
		d, err := config.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		opts = s.generator.Preset(d).Options(req.Seed)
	}

	solution := level.Generate(opts)
	puzzle := solution.Puzzle()
	writeJSON(ctx, fasthttp.StatusOK, generateResp{
		Seed:     opts.Seed,
		Summary:  level.Summary(puzzle),
		Level:    puzzle,
		Solution: solution,
	})
}

// --- progress ---

func (s *Server) handleProgress(ctx *fasthttp.RequestCtx) {
	if s.progress == nil {
		writeError(ctx, fasthttp.StatusNotFound, "progress is not enabled")
		return
	}
	sctx, cancel := s.storeContext()
	defer cancel()
	exp, err := s.progress.Export(sctx)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, exp)
}

// --- sessions ---

type createSessionReq struct {
	LevelID string `json:"level_id"`
}

type sessionResp struct {
	ID       string           `json:"id"`
	LevelID  string           `json:"level_id"`
	Snapshot session.Snapshot `json:"snapshot"`
}

type selectReq struct {
	Cell string `json:"cell"`
}

type moveReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type moveResp struct {
	Applied  bool             `json:"applied"`
	Snapshot session.Snapshot `json:"snapshot"`
}

func respond(e *entry) sessionResp {
	return sessionResp{ID: e.id, LevelID: e.levelID, Snapshot: e.session.Snapshot()}
}

func (s *Server) handleCreateSession(ctx *fasthttp.RequestCtx) {
	var req createSessionReq
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.LevelID == "" {
		first, ok := s.catalog.First()
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "catalog is empty")
			return
		}
		req.LevelID = first
	}

	def, err := s.catalog.Get(req.LevelID)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}
	lvl, err := def.Build()
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	e := s.sessions.create(def.ID, session.New(lvl))
	s.logger.Info("session created", "session", e.id, "level", def.ID)
	writeJSON(ctx, fasthttp.StatusCreated, respond(e))
}

// lookup resolves a session id or writes 404.
func (s *Server) lookup(ctx *fasthttp.RequestCtx, id string) (*entry, bool) {
	e, ok := s.sessions.get(id)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "session not found: "+id)
	}
	return e, ok
}

func (s *Server) handleGetSession(ctx *fasthttp.RequestCtx, id string) {
	if e, ok := s.lookup(ctx, id); ok {
		writeJSON(ctx, fasthttp.StatusOK, respond(e))
	}
}

func (s *Server) handleDeleteSession(ctx *fasthttp.RequestCtx, id string) {
	if !s.sessions.remove(id) {
		writeError(ctx, fasthttp.StatusNotFound, "session not found: "+id)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *Server) handleSelect(ctx *fasthttp.RequestCtx, id string) {
	e, ok := s.lookup(ctx, id)
	if !ok {
		return
	}
	var req selectReq
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	cell, err := level.ParseCellID(req.Cell)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if err := e.session.Select(cell); err != nil {
		writeCellError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, respond(e))
}

func (s *Server) handleMove(ctx *fasthttp.RequestCtx, id string) {
	e, ok := s.lookup(ctx, id)
	if !ok {
		return
	}
	var req moveReq
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	from, err := level.ParseCellID(req.From)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	to, err := level.ParseCellID(req.To)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	applied, err := e.session.Move(from, to)
	if err != nil {
		writeCellError(ctx, err)
		return
	}

	snap := e.session.Snapshot()
	if applied {
		s.logger.Debug("move", "session", e.id, "from", from, "to", to)
	}
	if snap.Solved {
		s.recordCompletion(e)
	}
	writeJSON(ctx, fasthttp.StatusOK, moveResp{Applied: applied, Snapshot: snap})
}

func (s *Server) handleReset(ctx *fasthttp.RequestCtx, id string) {
	if e, ok := s.lookup(ctx, id); ok {
		e.session.Reset()
		writeJSON(ctx, fasthttp.StatusOK, respond(e))
	}
}

// recordCompletion marks the session's level completed the first time it is solved.
func (s *Server) recordCompletion(e *entry) {
	if !s.sessions.markCompleted(e) {
		return
	}
	s.logger.Info("level completed", "session", e.id, "level", e.levelID)
	if s.progress == nil {
		return
	}
	ctx, cancel := s.storeContext()
	defer cancel()
	if err := s.progress.MarkCompleted(ctx, e.levelID); err != nil {
		s.logger.Warn("could not record completion", "level", e.levelID, "error", err)
	}
}

func writeCellError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, session.ErrUnknownCell) {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
}
