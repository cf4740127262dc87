// internal/directory/store.go
package directory

import (
	"context"
	"database/sql"

	"creator-match/internal/common/errors"
	"creator-match/internal/common/logger"
	"creator-match/internal/models"
)

// Store reads the creator directory from PostgreSQL. The directory is the
// authoritative profile listing; the vector index holds a projection of it.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "directory"}),
	}
}

const listQuery = `
	SELECT id, name, profile_link, gender, location, follower_tier,
	       followers, average_views, engagement_rate, mf_split, india_split,
	       age_concentration, niche, brand_fit, vibe, commercials,
	       contact_no, email
	FROM creators
	ORDER BY followers DESC
	LIMIT $1 OFFSET $2`

const countQuery = `SELECT COUNT(*) FROM creators`

// List returns one page of creator profiles plus the total row count.
func (s *Store) List(ctx context.Context, page, limit int) ([]models.CreatorProfile, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, errors.NewQueryExecutionFailedError("creators_count", err)
	}

	rows, err := s.db.QueryContext(ctx, listQuery, limit, offset)
	if err != nil {
		return nil, 0, errors.NewQueryExecutionFailedError("creators_list", err)
	}
	defer rows.Close()

	profiles := make([]models.CreatorProfile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, errors.NewQueryExecutionFailedError("creators_scan", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewQueryExecutionFailedError("creators_rows", err)
	}

	s.logger.Debug("directory page loaded", map[string]interface{}{
		"page":  page,
		"limit": limit,
		"total": total,
		"rows":  len(profiles),
	})

	return profiles, total, nil
}

func scanProfile(rows *sql.Rows) (models.CreatorProfile, error) {
	var p models.CreatorProfile
	var (
		profileLink, gender, location, tier sql.NullString
		mfSplit, indiaSplit, ageConc        sql.NullString
		niche, brandFit, vibe, commercials  sql.NullString
		contactNo, email                    sql.NullString
		followers, avgViews                 sql.NullInt64
		engagementRate                      sql.NullFloat64
	)

	if err := rows.Scan(
		&p.ID, &p.Name, &profileLink, &gender, &location, &tier,
		&followers, &avgViews, &engagementRate, &mfSplit, &indiaSplit,
		&ageConc, &niche, &brandFit, &vibe, &commercials,
		&contactNo, &email,
	); err != nil {
		return p, err
	}

	p.ProfileURL = profileLink.String
	p.Gender = gender.String
	p.Location = location.String
	p.TierLabel = tier.String
	p.Followers = followers.Int64
	p.AvgViews = avgViews.Int64
	if engagementRate.Valid {
		p.EngagementRate = engagementRate.Float64
		p.HasEngagement = true
	}
	p.GenderSplit = mfSplit.String
	p.GeoSplit = indiaSplit.String
	p.AgeConcentration = ageConc.String
	p.Niche = niche.String
	p.BrandFit = brandFit.String
	p.Vibe = vibe.String
	p.PriceRaw = commercials.String
	p.Phone = contactNo.String
	p.Email = email.String

	return p, nil
}
