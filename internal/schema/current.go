package schema

const (
	EntityJob         = "Job"
	EntityPerson      = "Person"
	EntityPersonJob   = "PersonJob"
	EntityService     = "Service"
	EntityAppointment = "Appointment"
	EntityUser        = "User"
	EntityLedger      = "MigrationLedger"
)

var (
	idField = Field{Column: "id", Type: Integer, PrimaryKey: true}

	createdAt = Field{Column: "created_at", Type: Timestamp, Default: "CURRENT_TIMESTAMP"}
	updatedAt = Field{Column: "updated_at", Type: Timestamp, Default: "CURRENT_TIMESTAMP"}

	AppointmentStatuses = []string{"pending", "confirmed", "cancelled", "completed"}
)

var tables = map[string]string{
	EntityJob:     "Job",
	EntityPerson:  "Persoane",
	EntityService: "Servicii",
}

func setNull(column, entity string) Field {
	return Field{Column: column, Type: Integer, Nullable: true, Ref: &Reference{Entity: entity, Table: tables[entity], OnDelete: SetNull}}
}

func cascade(column, entity string) Field {
	return Field{Column: column, Type: Integer, Ref: &Reference{Entity: entity, Table: tables[entity], OnDelete: Cascade}}
}

// CurrentEntities is the shape every store must have after all released
// migrations have been applied.
func CurrentEntities() []Entity {
	return []Entity{
		{
			Name:  EntityJob,
			Table: "Job",
			Fields: []Field{
				idField,
				{Column: "nume", Type: Text, Size: 100, Unique: true},
				createdAt,
				updatedAt,
			},
			Indexes: []Index{{Name: "idx_Job_nume_1b66a2", Columns: []string{"nume"}}},
		},
		{
			Name:  EntityPerson,
			Table: "Persoane",
			Fields: []Field{
				idField,
				{Column: "nume", Type: Text, Size: 100},
				{Column: "prenume", Type: Text, Size: 100},
				setNull("job_id", EntityJob),
			},
			Indexes: []Index{
				{Name: "idx_Persoane_job_id_58d8bb", Columns: []string{"job_id"}},
				{Name: "idx_Persoane_nume_b0ad65", Columns: []string{"nume", "prenume"}},
			},
		},
		{
			Name:  EntityPersonJob,
			Table: "PersoanaJob",
			Fields: []Field{
				idField,
				createdAt,
				cascade("job_id", EntityJob),
				cascade("persoana_id", EntityPerson),
			},
			Indexes: []Index{
				{Name: "idx_PersoanaJob_persoan_376d9f", Columns: []string{"persoana_id"}},
				{Name: "idx_PersoanaJob_job_id_1a24cd", Columns: []string{"job_id"}},
			},
			Uniques: []Unique{{Name: "uid_PersoanaJob_persoan_7751e2", Columns: []string{"persoana_id", "job_id"}}},
		},
		{
			Name:  EntityService,
			Table: "Servicii",
			Fields: []Field{
				idField,
				{Column: "descriere", Type: Text, Size: 255},
				setNull("job_id", EntityJob),
			},
			Indexes: []Index{
				{Name: "idx_Servicii_job_id_87a4e7", Columns: []string{"job_id"}},
				{Name: "idx_Servicii_descrie_a80feb", Columns: []string{"descriere"}},
			},
		},
		{
			Name:  EntityAppointment,
			Table: "Programari",
			Fields: []Field{
				idField,
				{Column: "data", Type: Date},
				{Column: "ora", Type: TimeOfDay},
				{Column: "observatii", Type: FreeText, Nullable: true},
				{Column: "nume_client", Type: Text, Size: 100, Nullable: true},
				{Column: "prenume_client", Type: Text, Size: 100, Nullable: true},
				{Column: "email_client", Type: Text, Size: 200, Nullable: true},
				{Column: "telefon_client", Type: Text, Size: 50, Nullable: true},
				{Column: "status", Type: Status, Size: 20, Default: "'pending'", Values: AppointmentStatuses},
				createdAt,
				updatedAt,
				setNull("job_id", EntityJob),
				setNull("persoana_id", EntityPerson),
				setNull("serviciu_id", EntityService),
			},
			Indexes: []Index{
				{Name: "idx_Programari_data_3d8abf", Columns: []string{"data"}},
				{Name: "idx_Programari_data_730257", Columns: []string{"data", "status"}},
				{Name: "idx_Programari_persoan_400f77", Columns: []string{"persoana_id"}},
				{Name: "idx_Programari_job_id_d041f7", Columns: []string{"job_id"}},
				{Name: "idx_Programari_servici_de5b1a", Columns: []string{"serviciu_id"}},
			},
		},
		{
			Name:  EntityUser,
			Table: "Users",
			Fields: []Field{
				idField,
				{Column: "username", Type: Text, Size: 50, Unique: true},
				{Column: "password", Type: Text, Size: 200},
				{Column: "email", Type: Text, Size: 200, Unique: true},
				{Column: "role", Type: Text, Size: 20, Default: "'user'"},
				createdAt,
				updatedAt,
			},
		},
		{
			Name:  EntityLedger,
			Table: "aerich",
			Fields: []Field{
				idField,
				{Column: "version", Type: Text, Size: 255},
				{Column: "app", Type: Text, Size: 100},
				{Column: "content", Type: JSON},
			},
		},
	}
}

// Current returns the registry for CurrentEntities.
func Current() *Registry {
	r, err := New(CurrentEntities(), ManyToMany{Left: EntityPerson, Right: EntityJob, Through: EntityPersonJob})
	if err != nil {
		panic(err)
	}
	return r
}
