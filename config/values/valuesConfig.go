package values

// OzonValues -- параметры синхронизации по умолчанию.
type OzonValues struct {
	// Warehouse routing targets. KGT goods go to the freight warehouse.
	StandardWarehouseID int64 `yaml:"standard-warehouse-id"`
	FreightWarehouseID  int64 `yaml:"freight-warehouse-id"`

	// Marketplace request shaping.
	PageLimit      int `yaml:"page-limit"`
	ChunkSize      int `yaml:"chunk-size"`
	BatchSize      int `yaml:"batch-size"`
	RequestTimeout int `yaml:"request-timeout-seconds"`
	RatePerMinute  int `yaml:"rate-per-minute"`
}

func Defaults() OzonValues {
	return OzonValues{
		StandardWarehouseID: 1020002390459000,
		FreightWarehouseID:  1020002531538000,
		PageLimit:           1000,
		ChunkSize:           1000,
		BatchSize:           100,
		RequestTimeout:      60,
		RatePerMinute:       120,
	}
}
