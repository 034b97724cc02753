package lookup

// StatusHealthy is the only status the health endpoints report.
const StatusHealthy = "healthy"

// HealthReport is the body of GET /health. Field names are relied on by gateway policies.
type HealthReport struct {
	Status    string   `json:"status" example:"healthy"`
	Service   string   `json:"service" example:"orders-api"`
	DBRecords int      `json:"db_records" example:"3"`
	Endpoints []string `json:"endpoints"`
}

// RootReport is the body of GET /.
type RootReport struct {
	Service string `json:"service" example:"orders"`
	Status  string `json:"status" example:"healthy"`
	Version string `json:"version" example:"1.0.0"`
}

// Health reports the service status and catalog size. endpoints lists the exposed route templates.
func (s *Service[R]) Health(endpoints []string) HealthReport {
	return HealthReport{
		Status:    StatusHealthy,
		Service:   s.def.Name,
		DBRecords: s.catalog.Len(),
		Endpoints: append([]string(nil), endpoints...),
	}
}

// Root reports the liveness of the service.
func (s *Service[R]) Root(version string) RootReport {
	return RootReport{
		Service: s.def.ShortName,
		Status:  StatusHealthy,
		Version: version,
	}
}
