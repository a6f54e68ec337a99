package migration

// History is every released unit in version order. Released units are
// frozen: later schema changes get a new unit.
func History() []Unit {
	return []Unit{
		{Version: "0_20251007094343_init", Upgrade: initUpgrade},
		{Version: "1_20251103141033_None", Upgrade: jobsUpgrade},
		{
			Version:   "2_20251103142500_simplify_tables",
			Upgrade:   concat(simplifyPersons, simplifyServices),
			Downgrade: concat(restorePersons, restoreServices),
		},
	}
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ============================================================
// 0_20251007094343_init
// ============================================================

var initUpgrade = []string{
	`CREATE TABLE IF NOT EXISTS "Persoane" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "nume" VARCHAR(100) NOT NULL,
    "prenume" VARCHAR(100) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS "Servicii" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "descriere" VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS "Programari" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "data" VARCHAR(50),
    "ora" VARCHAR(10),
    "observatii" TEXT,
    "nume" VARCHAR(100),
    "prenume" VARCHAR(100),
    "email" VARCHAR(200),
    "telefon" VARCHAR(50),
    "persoana_id" INT REFERENCES "Persoane" ("id") ON DELETE CASCADE,
    "serviciu_id" INT REFERENCES "Servicii" ("id") ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS "aerich" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "version" VARCHAR(255) NOT NULL,
    "app" VARCHAR(100) NOT NULL,
    "content" JSON NOT NULL
)`,
}

// ============================================================
// 1_20251103141033_None
// ============================================================

var jobsUpgrade = concat(createJobs, expandPersons, createPersonJobs, expandServices, expandAppointments, createUsers)

var createJobs = []string{
	`CREATE TABLE IF NOT EXISTS "Job" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "nume" VARCHAR(100) NOT NULL UNIQUE,
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "updated_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS "idx_Job_nume_1b66a2" ON "Job" ("nume")`,
}

var expandPersons = []string{
	`CREATE TABLE "new_Persoane" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "nume" VARCHAR(100) NOT NULL,
    "prenume" VARCHAR(100) NOT NULL,
    "email" VARCHAR(200) UNIQUE,
    "telefon" VARCHAR(50),
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "updated_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "job_id" INT REFERENCES "Job" ("id") ON DELETE SET NULL
)`,
	`INSERT INTO "new_Persoane" ("id", "nume", "prenume")
SELECT "id", "nume", "prenume" FROM "Persoane"`,
	`DROP TABLE "Persoane"`,
	`ALTER TABLE "new_Persoane" RENAME TO "Persoane"`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_job_id_58d8bb" ON "Persoane" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_nume_b0ad65" ON "Persoane" ("nume", "prenume")`,
}

var createPersonJobs = []string{
	`CREATE TABLE IF NOT EXISTS "PersoanaJob" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "job_id" INT NOT NULL REFERENCES "Job" ("id") ON DELETE CASCADE,
    "persoana_id" INT NOT NULL REFERENCES "Persoane" ("id") ON DELETE CASCADE,
    CONSTRAINT "uid_PersoanaJob_persoan_7751e2" UNIQUE ("persoana_id", "job_id")
)`,
	`CREATE INDEX IF NOT EXISTS "idx_PersoanaJob_persoan_376d9f" ON "PersoanaJob" ("persoana_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_PersoanaJob_job_id_1a24cd" ON "PersoanaJob" ("job_id")`,
}

var expandServices = []string{
	`CREATE TABLE "new_Servicii" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "descriere" VARCHAR(255) NOT NULL,
    "durata_min" INT NOT NULL DEFAULT 30,
    "pret" VARCHAR(40),
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "updated_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "job_id" INT REFERENCES "Job" ("id") ON DELETE SET NULL
)`,
	`INSERT INTO "new_Servicii" ("id", "descriere")
SELECT "id", "descriere" FROM "Servicii"`,
	`DROP TABLE "Servicii"`,
	`ALTER TABLE "new_Servicii" RENAME TO "Servicii"`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_job_id_87a4e7" ON "Servicii" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_descrie_a80feb" ON "Servicii" ("descriere")`,
}

// Legacy rows may lack a date or time; they get a sentinel that sorts into
// the past so they stay out of default listings.
var expandAppointments = []string{
	`CREATE TABLE "new_Programari" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "data" DATE NOT NULL,
    "ora" TIME NOT NULL,
    "observatii" TEXT,
    "nume_client" VARCHAR(100),
    "prenume_client" VARCHAR(100),
    "email_client" VARCHAR(200),
    "telefon_client" VARCHAR(50),
    "status" VARCHAR(20) NOT NULL DEFAULT 'pending',
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "updated_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "job_id" INT REFERENCES "Job" ("id") ON DELETE SET NULL,
    "persoana_id" INT REFERENCES "Persoane" ("id") ON DELETE SET NULL,
    "serviciu_id" INT REFERENCES "Servicii" ("id") ON DELETE SET NULL
)`,
	`INSERT INTO "new_Programari" ("id", "data", "ora", "observatii", "nume_client", "prenume_client", "email_client", "telefon_client", "persoana_id", "serviciu_id")
SELECT "id", COALESCE("data", '1970-01-01'), COALESCE("ora", '00:00'), "observatii", "nume", "prenume", "email", "telefon", "persoana_id", "serviciu_id" FROM "Programari"`,
	`DROP TABLE "Programari"`,
	`ALTER TABLE "new_Programari" RENAME TO "Programari"`,
	`CREATE INDEX IF NOT EXISTS "idx_Programari_data_3d8abf" ON "Programari" ("data")`,
	`CREATE INDEX IF NOT EXISTS "idx_Programari_data_730257" ON "Programari" ("data", "status")`,
	`CREATE INDEX IF NOT EXISTS "idx_Programari_persoan_400f77" ON "Programari" ("persoana_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Programari_job_id_d041f7" ON "Programari" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Programari_servici_de5b1a" ON "Programari" ("serviciu_id")`,
}

var createUsers = []string{
	`CREATE TABLE IF NOT EXISTS "Users" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "username" VARCHAR(50) NOT NULL UNIQUE,
    "password" VARCHAR(200) NOT NULL,
    "email" VARCHAR(200) NOT NULL UNIQUE,
    "role" VARCHAR(20) NOT NULL DEFAULT 'user',
    "created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    "updated_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
}

// ============================================================
// 2_20251103142500_simplify_tables
// ============================================================

var simplifyPersons = []string{
	`CREATE TABLE "new_Persoane" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "nume" VARCHAR(100) NOT NULL,
    "prenume" VARCHAR(100) NOT NULL,
    "job_id" INT REFERENCES "Job" ("id") ON DELETE SET NULL
)`,
	`INSERT INTO "new_Persoane" ("id", "nume", "prenume", "job_id")
SELECT "id", "nume", "prenume", "job_id" FROM "Persoane"`,
	`DROP TABLE "Persoane"`,
	`ALTER TABLE "new_Persoane" RENAME TO "Persoane"`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_job_id_58d8bb" ON "Persoane" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_nume_b0ad65" ON "Persoane" ("nume", "prenume")`,
}

var simplifyServices = []string{
	`CREATE TABLE "new_Servicii" (
    "id" INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
    "descriere" VARCHAR(255) NOT NULL,
    "job_id" INT REFERENCES "Job" ("id") ON DELETE SET NULL
)`,
	`INSERT INTO "new_Servicii" ("id", "descriere", "job_id")
SELECT "id", "descriere", "job_id" FROM "Servicii"`,
	`DROP TABLE "Servicii"`,
	`ALTER TABLE "new_Servicii" RENAME TO "Servicii"`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_job_id_87a4e7" ON "Servicii" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_descrie_a80feb" ON "Servicii" ("descriere")`,
}

var restorePersons = []string{
	expandPersons[0],
	`INSERT INTO "new_Persoane" ("id", "nume", "prenume", "job_id")
SELECT "id", "nume", "prenume", "job_id" FROM "Persoane"`,
	`DROP TABLE "Persoane"`,
	`ALTER TABLE "new_Persoane" RENAME TO "Persoane"`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_job_id_58d8bb" ON "Persoane" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Persoane_nume_b0ad65" ON "Persoane" ("nume", "prenume")`,
}

var restoreServices = []string{
	expandServices[0],
	`INSERT INTO "new_Servicii" ("id", "descriere", "job_id")
SELECT "id", "descriere", "job_id" FROM "Servicii"`,
	`DROP TABLE "Servicii"`,
	`ALTER TABLE "new_Servicii" RENAME TO "Servicii"`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_job_id_87a4e7" ON "Servicii" ("job_id")`,
	`CREATE INDEX IF NOT EXISTS "idx_Servicii_descrie_a80feb" ON "Servicii" ("descriere")`,
}
