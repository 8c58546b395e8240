package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homeforge-app/homeforge/internal/profile"
	"github.com/homeforge-app/homeforge/internal/scoring"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const areaColumns = `id, name, state, county, metro_area, distance_to_metro, tags, coordinates,
	climate, infrastructure, land_info, tax_info,
	school_district, nearest_hospital, nearest_grocery, population,
	pros, cons, notes, tier, scores,
	created_at, updated_at`

func (s *PostgresStore) CreateArea(ctx context.Context, area *Area) error {
	climateJSON, _ := json.Marshal(area.Climate)
	infraJSON, _ := json.Marshal(area.Infrastructure)
	landJSON, _ := json.Marshal(area.LandInfo)
	taxJSON, _ := json.Marshal(area.TaxInfo)
	scoresJSON, _ := json.Marshal(area.Scores)

	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_areas (name, state, county, metro_area, distance_to_metro, tags, coordinates,
			climate, infrastructure, land_info, tax_info,
			school_district, nearest_hospital, nearest_grocery, population,
			pros, cons, notes, tier, scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at`,
		area.Name, area.State, area.County, area.MetroArea, area.DistanceToMetro, area.Tags, area.Coordinates,
		climateJSON, infraJSON, landJSON, taxJSON,
		area.SchoolDistrict, area.NearestHospital, area.NearestGrocery, area.Population,
		area.Pros, area.Cons, area.Notes, area.Tier, scoresJSON,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
}

func (s *PostgresStore) GetArea(ctx context.Context, id uuid.UUID) (*Area, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+areaColumns+`
		FROM homeforge_areas WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas, err := scanAreas(rows)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, nil
	}
	return areas[0], nil
}

func (s *PostgresStore) ListAreas(ctx context.Context, filter AreaFilter) ([]*Area, error) {
	query := `SELECT ` + areaColumns + ` FROM homeforge_areas WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.State != "" {
		n++
		query += fmt.Sprintf(" AND state = $%d", n)
		args = append(args, filter.State)
	}
	if filter.Tier != nil {
		n++
		query += fmt.Sprintf(" AND tier = $%d", n)
		args = append(args, string(*filter.Tier))
	}
	if filter.Tag != "" {
		n++
		query += fmt.Sprintf(" AND $%d = ANY(tags)", n)
		args = append(args, filter.Tag)
	}

	query += " ORDER BY created_at ASC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAreas(rows)
}

func (s *PostgresStore) UpdateArea(ctx context.Context, area *Area) error {
	climateJSON, _ := json.Marshal(area.Climate)
	infraJSON, _ := json.Marshal(area.Infrastructure)
	landJSON, _ := json.Marshal(area.LandInfo)
	taxJSON, _ := json.Marshal(area.TaxInfo)
	scoresJSON, _ := json.Marshal(area.Scores)

	_, err := s.pool.Exec(ctx, `
		UPDATE homeforge_areas SET
			name = $2, state = $3, county = $4, metro_area = $5, distance_to_metro = $6,
			tags = $7, coordinates = $8,
			climate = $9, infrastructure = $10, land_info = $11, tax_info = $12,
			school_district = $13, nearest_hospital = $14, nearest_grocery = $15, population = $16,
			pros = $17, cons = $18, notes = $19, tier = $20, scores = $21,
			updated_at = NOW()
		WHERE id = $1`,
		area.ID, area.Name, area.State, area.County, area.MetroArea, area.DistanceToMetro,
		area.Tags, area.Coordinates,
		climateJSON, infraJSON, landJSON, taxJSON,
		area.SchoolDistrict, area.NearestHospital, area.NearestGrocery, area.Population,
		area.Pros, area.Cons, area.Notes, area.Tier, scoresJSON,
	)
	return err
}

func (s *PostgresStore) DeleteArea(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM homeforge_areas WHERE id = $1`, id)
	return err
}

// SetScore updates one criterion score inside the area's scores blob in a
// single transaction. The score is clamped here, at the write boundary.
func (s *PostgresStore) SetScore(ctx context.Context, areaID uuid.UUID, categoryID, criterionID string, score int) error {
	return s.mutateScores(ctx, areaID, func(scores scoring.AreaScores) {
		scores.SetScore(categoryID, criterionID, score)
	})
}

func (s *PostgresStore) SetNotes(ctx context.Context, areaID uuid.UUID, categoryID, criterionID, notes string) error {
	return s.mutateScores(ctx, areaID, func(scores scoring.AreaScores) {
		scores.SetNotes(categoryID, criterionID, notes)
	})
}

func (s *PostgresStore) mutateScores(ctx context.Context, areaID uuid.UUID, mutate func(scoring.AreaScores)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var scoresJSON []byte
	err = tx.QueryRow(ctx, `
		SELECT scores FROM homeforge_areas WHERE id = $1 FOR UPDATE`, areaID,
	).Scan(&scoresJSON)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("area %s not found", areaID)
	}
	if err != nil {
		return err
	}

	scores := scoring.AreaScores{}
	if scoresJSON != nil {
		// Malformed or partial blobs read as unscored rather than failing.
		_ = json.Unmarshal(scoresJSON, &scores)
	}
	mutate(scores)

	updated, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE homeforge_areas SET scores = $2, updated_at = NOW() WHERE id = $1`,
		areaID, updated,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetProfileState loads the weight-profile blob. A missing row reads as the
// zero state, which resolves to schema defaults.
func (s *PostgresStore) GetProfileState(ctx context.Context) (profile.State, error) {
	var stateJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT state FROM homeforge_scorecard WHERE id = 1`,
	).Scan(&stateJSON)
	if err == pgx.ErrNoRows {
		return profile.State{}, nil
	}
	if err != nil {
		return profile.State{}, err
	}

	var st profile.State
	if stateJSON != nil {
		_ = json.Unmarshal(stateJSON, &st)
	}
	return st, nil
}

func (s *PostgresStore) SaveProfileState(ctx context.Context, st profile.State) error {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO homeforge_scorecard (id, state, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET state = $1, updated_at = NOW()`,
		stateJSON,
	)
	return err
}

func (s *PostgresStore) CreateBudgetCategory(ctx context.Context, c *BudgetCategory) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_budget (name, estimate, actual, notes, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Estimate, c.Actual, c.Notes, c.SortOrder,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *PostgresStore) ListBudgetCategories(ctx context.Context) ([]*BudgetCategory, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, estimate, actual, notes, sort_order, created_at, updated_at
		FROM homeforge_budget ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*BudgetCategory
	for rows.Next() {
		c := &BudgetCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Estimate, &c.Actual, &c.Notes, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *PostgresStore) UpdateBudgetCategory(ctx context.Context, c *BudgetCategory) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE homeforge_budget SET
			name = $2, estimate = $3, actual = $4, notes = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $1`,
		c.ID, c.Name, c.Estimate, c.Actual, c.Notes, c.SortOrder,
	)
	return err
}

func (s *PostgresStore) DeleteBudgetCategory(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM homeforge_budget WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) CreateRequirement(ctx context.Context, r *Requirement) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_requirements (category, name, priority, done, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		r.Category, r.Name, r.Priority, r.Done, r.Notes,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func (s *PostgresStore) ListRequirements(ctx context.Context) ([]*Requirement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, category, name, priority, done, notes, created_at, updated_at
		FROM homeforge_requirements ORDER BY category ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*Requirement
	for rows.Next() {
		r := &Requirement{}
		if err := rows.Scan(&r.ID, &r.Category, &r.Name, &r.Priority, &r.Done, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

func (s *PostgresStore) UpdateRequirement(ctx context.Context, r *Requirement) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE homeforge_requirements SET
			category = $2, name = $3, priority = $4, done = $5, notes = $6, updated_at = NOW()
		WHERE id = $1`,
		r.ID, r.Category, r.Name, r.Priority, r.Done, r.Notes,
	)
	return err
}

func (s *PostgresStore) DeleteRequirement(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM homeforge_requirements WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) CreateMilestone(ctx context.Context, m *Milestone) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_milestones (phase, name, status, target_date, notes, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		m.Phase, m.Name, m.Status, m.TargetDate, m.Notes, m.SortOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (s *PostgresStore) ListMilestones(ctx context.Context) ([]*Milestone, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, phase, name, status, target_date, notes, sort_order, created_at, updated_at
		FROM homeforge_milestones ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []*Milestone
	for rows.Next() {
		m := &Milestone{}
		if err := rows.Scan(&m.ID, &m.Phase, &m.Name, &m.Status, &m.TargetDate, &m.Notes, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (s *PostgresStore) UpdateMilestone(ctx context.Context, m *Milestone) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE homeforge_milestones SET
			phase = $2, name = $3, status = $4, target_date = $5, notes = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Phase, m.Name, m.Status, m.TargetDate, m.Notes, m.SortOrder,
	)
	return err
}

func (s *PostgresStore) DeleteMilestone(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM homeforge_milestones WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) AppendChatMessage(ctx context.Context, msg *ChatMessage) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_chat (role, content)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		msg.Role, msg.Content,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (s *PostgresStore) ListChatMessages(ctx context.Context, limit int) ([]*ChatMessage, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, role, content, created_at
		FROM homeforge_chat ORDER BY created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*ChatMessage
	for rows.Next() {
		m := &ChatMessage{}
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *PostgresStore) ClearChatMessages(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM homeforge_chat`)
	return err
}

func (s *PostgresStore) GetSettings(ctx context.Context) (*Settings, error) {
	st := &Settings{}
	err := s.pool.QueryRow(ctx, `
		SELECT ollama_model, updated_at FROM homeforge_settings WHERE id = 1`,
	).Scan(&st.OllamaModel, &st.UpdatedAt)
	if err == pgx.ErrNoRows {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *PostgresStore) SaveSettings(ctx context.Context, st *Settings) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO homeforge_settings (id, ollama_model, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET ollama_model = $1, updated_at = NOW()
		RETURNING updated_at`,
		st.OllamaModel,
	).Scan(&st.UpdatedAt)
}

func scanAreas(rows pgx.Rows) ([]*Area, error) {
	var areas []*Area
	for rows.Next() {
		a := &Area{}
		var climateJSON, infraJSON, landJSON, taxJSON, scoresJSON []byte
		if err := rows.Scan(
			&a.ID, &a.Name, &a.State, &a.County, &a.MetroArea, &a.DistanceToMetro, &a.Tags, &a.Coordinates,
			&climateJSON, &infraJSON, &landJSON, &taxJSON,
			&a.SchoolDistrict, &a.NearestHospital, &a.NearestGrocery, &a.Population,
			&a.Pros, &a.Cons, &a.Notes, &a.Tier, &scoresJSON,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if climateJSON != nil {
			_ = json.Unmarshal(climateJSON, &a.Climate)
		}
		if infraJSON != nil {
			_ = json.Unmarshal(infraJSON, &a.Infrastructure)
		}
		if landJSON != nil {
			_ = json.Unmarshal(landJSON, &a.LandInfo)
		}
		if taxJSON != nil {
			_ = json.Unmarshal(taxJSON, &a.TaxInfo)
		}
		a.Scores = scoring.AreaScores{}
		if scoresJSON != nil {
			_ = json.Unmarshal(scoresJSON, &a.Scores)
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}
