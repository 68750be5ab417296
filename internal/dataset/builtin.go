package dataset

import "advocates/internal/model"

var builtinSpecialties = []string{
	"Bipolar",
	"LGBTQ",
	"Medication/Prescribing",
	"Suicide History/Attempts",
	"General Mental Health (anxiety, depression, stress, grief, life transitions)",
	"Men's issues",
	"Relationship Issues (family, friends, couple, etc)",
	"Trauma & PTSD",
	"Personality disorders",
	"Personal growth",
	"Substance use/abuse",
	"Pediatrics",
	"Women's issues (post-partum, infertility, family planning)",
	"Chronic pain",
	"Weight loss & nutrition",
	"Eating disorders",
	"Diabetic Diet and nutrition",
	"Coaching (leadership, career, academic and wellness)",
	"Life coaching",
	"Obsessive-compulsive disorders",
	"Neuropsychological evaluations & testing (ADHD testing)",
	"Attention and Hyperactivity (ADHD)",
	"Sleep issues",
	"Schizophrenia and psychotic disorders",
	"Learning disorders",
	"Domestic abuse",
}

// specialtyRange picks a contiguous, wrap-around run of n specialties starting at start.
func specialtyRange(start, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, builtinSpecialties[(start+i)%len(builtinSpecialties)])
	}
	return out
}

// Builtin returns the fixed seed directory. Ids are derived from each record, so they are
// the same on every start.
func Builtin() []model.Advocate {
	advocates := []model.Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: specialtyRange(0, 3), YearsOfExperience: 10, PhoneNumber: "5551234567"},
		{FirstName: "Jane", LastName: "Smith", City: "Los Angeles", Degree: "PhD", Specialties: specialtyRange(3, 2), YearsOfExperience: 8, PhoneNumber: "5559876543"},
		{FirstName: "Alice", LastName: "Johnson", City: "Chicago", Degree: "MSW", Specialties: specialtyRange(5, 4), YearsOfExperience: 5, PhoneNumber: "5554567890"},
		{FirstName: "Michael", LastName: "Brown", City: "Houston", Degree: "MD", Specialties: specialtyRange(9, 1), YearsOfExperience: 12, PhoneNumber: "5556543210"},
		{FirstName: "Emily", LastName: "Davis", City: "Phoenix", Degree: "PhD", Specialties: specialtyRange(10, 3), YearsOfExperience: 7, PhoneNumber: "5553210987"},
		{FirstName: "Chris", LastName: "Martinez", City: "Philadelphia", Degree: "MSW", Specialties: specialtyRange(13, 2), YearsOfExperience: 9, PhoneNumber: "5557890123"},
		{FirstName: "Jessica", LastName: "Taylor", City: "San Antonio", Degree: "MD", Specialties: specialtyRange(15, 5), YearsOfExperience: 11, PhoneNumber: "5554561234"},
		{FirstName: "David", LastName: "Harris", City: "San Diego", Degree: "PhD", Specialties: specialtyRange(20, 2), YearsOfExperience: 6, PhoneNumber: "5557896543"},
		{FirstName: "Laura", LastName: "Clark", City: "Dallas", Degree: "MSW", Specialties: specialtyRange(22, 3), YearsOfExperience: 4, PhoneNumber: "5550123456"},
		{FirstName: "Daniel", LastName: "Lewis", City: "San Jose", Degree: "MD", Specialties: specialtyRange(25, 2), YearsOfExperience: 13, PhoneNumber: "5553217654"},
		{FirstName: "Sarah", LastName: "Lee", City: "Austin", Degree: "PhD", Specialties: specialtyRange(1, 4), YearsOfExperience: 10, PhoneNumber: "5551238765"},
		{FirstName: "James", LastName: "King", City: "Jacksonville", Degree: "MSW", Specialties: specialtyRange(7, 2), YearsOfExperience: 5, PhoneNumber: "5556540987"},
		{FirstName: "Megan", LastName: "Green", City: "San Francisco", Degree: "MD", Specialties: specialtyRange(11, 3), YearsOfExperience: 14, PhoneNumber: "5559873456"},
		{FirstName: "Joshua", LastName: "Walker", City: "Columbus", Degree: "PhD", Specialties: specialtyRange(17, 2), YearsOfExperience: 9, PhoneNumber: "5556781234"},
		{FirstName: "Amanda", LastName: "Hall", City: "Fort Worth", Degree: "MSW", Specialties: specialtyRange(19, 4), YearsOfExperience: 3, PhoneNumber: "5559872345"},
	}
	for i := range advocates {
		advocates[i].ID = StableID(advocates[i])
	}
	return advocates
}
