package models

// GradeRecord holds the quarterly grades of a student. A zero value means the
// quarter has not been graded yet; averages divide by the count of non-zero
// quarters only.
type GradeRecord struct {
	Q1       float64 `json:"q1"`
	Q2       float64 `json:"q2"`
	Q3       float64 `json:"q3"`
	Exam     float64 `json:"exam"`
	Absences int     `json:"absences"`
}

// QuarterAverage returns the mean of the quarterly grades entered so far.
// With no quarters entered the average is zero.
func (g GradeRecord) QuarterAverage() float64 {
	var sum float64
	var n int
	for _, q := range []float64{g.Q1, g.Q2, g.Q3} {
		if q != 0 {
			sum += q
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Student is an enrolled child. ClassID references a Class by id; the
// reference may dangle (no cascade on class deletion under the orphan policy).
type Student struct {
	ID          string        `json:"id" example:"s1"`
	Name        string        `json:"name" example:"Alice Santos"`
	Age         int           `json:"age" example:"6"`
	ClassID     string        `json:"classId" example:"c1"`
	ParentName  string        `json:"parentName" example:"Sr. Silva"`
	Status      StudentStatus `json:"status" example:"active"`
	Grades      GradeRecord   `json:"grades"`
	Attendance  int           `json:"attendance" example:"98"`  // percentage
	Performance int           `json:"performance" example:"92"` // percentage
}
