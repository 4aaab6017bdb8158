// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, interests, linkedin)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, name, email, password_hash, role, interests, linkedin, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, interests, linkedin, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, role, interests, linkedin, created_at
    FROM users
    WHERE user_id = $1;`

	saveUser = `UPDATE users SET interests = $1, linkedin = $2
    WHERE user_id = $3
    RETURNING user_id, name, email, password_hash, role, interests, linkedin, created_at;`

	createJob = `INSERT INTO jobs (title, company, location, description, category, interests)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING job_id, title, company, location, description, category, interests, created_at;`

	findJobByID = `SELECT job_id, title, company, location, description, category, interests, created_at
    FROM jobs
    WHERE job_id = $1;`

	findAllJobs = `SELECT job_id, title, company, location, description, category, interests, created_at
    FROM jobs
    ORDER BY job_id;`

	// jobExists guards AddApplicant so that a missing posting is reported as
	// ErrJobNotFound rather than a foreign-key violation.
	jobExists = `SELECT EXISTS (SELECT 1 FROM jobs WHERE job_id = $1);`

	// addApplicant is the atomic apply-once guard: the UNIQUE(job_id, user_id)
	// constraint absorbs concurrent inserts and ON CONFLICT DO NOTHING turns
	// the loser into zero affected rows.
	addApplicant = `INSERT INTO job_applications (job_id, user_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	findApplicantsForJobs = `SELECT a.job_id, u.user_id, u.name, u.email
    FROM job_applications a
    JOIN users u ON u.user_id = a.user_id
    ORDER BY a.applied_at, u.user_id;`

	findApplicantsForJob = `SELECT a.job_id, u.user_id, u.name, u.email
    FROM job_applications a
    JOIN users u ON u.user_id = a.user_id
    WHERE a.job_id = $1
    ORDER BY a.applied_at, u.user_id;`
)
