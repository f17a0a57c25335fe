package job

func ptrString(s string) *string { return &s }

// sample listings inserted on first boot so the map has content
var seedJobs = []Job{
	{
		Title:        "Barista",
		Company:      "Blue Bottle Coffee",
		Category:     "Food Service",
		Description:  "Looking for an experienced barista who loves coffee art.",
		Lat:          37.7749,
		Lng:          -122.4194,
		Salary:       ptrString("$20/hr"),
		Type:         "Part-time",
		ContactPhone: "555-0101",
	},
	{
		Title:        "Warehouse Associate",
		Company:      "Logistics Pro",
		Category:     "Labor",
		Description:  "Entry level warehouse position. Heavy lifting required.",
		Lat:          37.7849,
		Lng:          -122.4094,
		Salary:       ptrString("$22/hr"),
		Type:         "Full-time",
		ContactPhone: "555-0102",
	},
	{
		Title:        "Receptionist",
		Company:      "Downtown Dental",
		Category:     "Office",
		Description:  "Friendly front desk receptionist needed for busy dental practice.",
		Lat:          37.7649,
		Lng:          -122.4294,
		Salary:       ptrString("$25/hr"),
		Type:         "Full-time",
		ContactPhone: "555-0103",
	},
	{
		Title:        "Line Cook",
		Company:      "Joe's Diner",
		Category:     "Food Service",
		Description:  "Urgent! Need a line cook for weekend shifts.",
		Lat:          37.7549,
		Lng:          -122.4394,
		Salary:       ptrString("$24/hr"),
		Type:         "Part-time",
		ContactPhone: "555-0104",
	},
}

// Seed inserts the sample listings when the jobs table is empty. Running it
// against a non-empty table is a no-op, so repeated boots never duplicate
// entries.
func Seed(service *Service) error {
	n, err := service.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, j := range seedJobs {
		if _, err := service.Create(j); err != nil {
			return err
		}
	}
	return nil
}
