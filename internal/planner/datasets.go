// Package planner turns a free-text analysis query into a concrete workflow
// plan: the analysis type, the datasets and layers involved, and an ordered
// list of processing steps.
package planner

// Dataset describes a remote imagery collection consumed by the raster
// provider. The core never fetches imagery itself; the catalog exists so
// plans can name their inputs precisely.
type Dataset struct {
	Name               string   `json:"name"`
	CollectionID       string   `json:"collection_id"`
	Description        string   `json:"description"`
	Bands              []string `json:"bands"`
	TemporalResolution string   `json:"temporal_resolution"`
	SpatialResolution  string   `json:"spatial_resolution"`
}

// Catalog returns the known datasets keyed by short name.
func Catalog() map[string]Dataset {
	return map[string]Dataset{
		"srtm": {
			Name:               "SRTM Digital Elevation Model",
			CollectionID:       "USGS/SRTMGL1_003",
			Description:        "30m resolution DEM",
			Bands:              []string{"elevation"},
			TemporalResolution: "static",
			SpatialResolution:  "30m",
		},
		"sentinel2": {
			Name:               "Sentinel-2 MSI",
			CollectionID:       "COPERNICUS/S2_SR",
			Description:        "Multispectral imagery for vegetation analysis",
			Bands:              []string{"B2", "B3", "B4", "B8", "B11", "B12"},
			TemporalResolution: "5 days",
			SpatialResolution:  "10-20m",
		},
		"sentinel1": {
			Name:               "Sentinel-1 SAR",
			CollectionID:       "COPERNICUS/S1_GRD",
			Description:        "SAR imagery for flood detection",
			Bands:              []string{"VV", "VH"},
			TemporalResolution: "6 days",
			SpatialResolution:  "10m",
		},
		"chirps": {
			Name:               "CHIRPS Precipitation",
			CollectionID:       "UCSB-CHG/CHIRPS/DAILY",
			Description:        "Daily precipitation estimates",
			Bands:              []string{"precipitation"},
			TemporalResolution: "daily",
			SpatialResolution:  "5km",
		},
		"modis_ndvi": {
			Name:               "MODIS NDVI",
			CollectionID:       "MODIS/006/MOD13Q1",
			Description:        "Vegetation indices",
			Bands:              []string{"NDVI", "EVI"},
			TemporalResolution: "16 days",
			SpatialResolution:  "250m",
		},
		"landsat8": {
			Name:               "Landsat 8 Surface Reflectance",
			CollectionID:       "LANDSAT/LC08/C02/T1_L2",
			Description:        "Multispectral imagery",
			Bands:              []string{"SR_B2", "SR_B3", "SR_B4", "SR_B5", "SR_B6", "SR_B7"},
			TemporalResolution: "16 days",
			SpatialResolution:  "30m",
		},
		"worldpop": {
			Name:               "WorldPop Population",
			CollectionID:       "WorldPop/POP/2020",
			Description:        "Population density estimates",
			Bands:              []string{"population"},
			TemporalResolution: "annual",
			SpatialResolution:  "100m",
		},
	}
}
