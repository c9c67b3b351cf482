package reporting

import (
	"fmt"
	"math"
	"sort"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/patient"
)

// WorkloadEntry pairs a doctor name with their appointment count.
type WorkloadEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// OperationalSummary holds occupancy, stay and workload figures. Rate fields
// are pre-formatted strings because the dashboard renders them verbatim.
type OperationalSummary struct {
	OccupancyRate            string         `json:"occupancyRate"`
	AverageStay              string         `json:"avgStay"`
	BusiestDepartment        string         `json:"busiestDepartment"`
	AppointmentsByDepartment map[string]int `json:"appointmentsByDepartment"`
	DoctorWorkload           []WorkloadEntry `json:"doctorWorkload"`
	GenderDemographics       map[string]int `json:"genderDemographics"`
}

// ComputeOperational derives occupancy and workload figures. A patient with
// an admit date and no discharge date occupies a bed; stay length uses the
// absolute day difference rounded up, so swapped dates still count. Busiest
// department ties go to the department seen first in the appointment list.
func ComputeOperational(
	patients []*patient.Patient,
	appointments []*appointment.Appointment,
	departments []*department.Department,
	doctors []*doctor.Doctor,
	totalBeds int,
) OperationalSummary {
	var admitted int
	for _, p := range patients {
		if p.AdmitDate != nil && *p.AdmitDate != "" && (p.DischargeDate == nil || *p.DischargeDate == "") {
			admitted++
		}
	}
	occupancy := "0.0"
	if totalBeds > 0 {
		occupancy = fmt.Sprintf("%.1f", float64(admitted)/float64(totalBeds)*100)
	}

	var totalStayDays, discharged int
	for _, p := range patients {
		if p.AdmitDate == nil || *p.AdmitDate == "" || p.DischargeDate == nil || *p.DischargeDate == "" {
			continue
		}
		admit, okA := parseDay(*p.AdmitDate)
		out, okD := parseDay(*p.DischargeDate)
		if !okA || !okD {
			continue
		}
		diff := math.Abs(out.Sub(admit).Hours() / 24)
		totalStayDays += int(math.Ceil(diff))
		discharged++
	}
	avgStay := "0"
	if discharged > 0 {
		avgStay = fmt.Sprintf("%.1f", float64(totalStayDays)/float64(discharged))
	}

	deptByID := make(map[string]string, len(departments))
	for _, d := range departments {
		deptByID[d.ID.String()] = d.Name
	}
	byDept := make(map[string]int)
	var deptOrder []string
	for _, a := range appointments {
		name, ok := deptByID[a.DepartmentID.String()]
		if !ok {
			name = "Unknown"
		}
		if _, seen := byDept[name]; !seen {
			deptOrder = append(deptOrder, name)
		}
		byDept[name]++
	}
	busiest := "N/A"
	best := 0
	for _, name := range deptOrder {
		if byDept[name] > best {
			best = byDept[name]
			busiest = name
		}
	}

	docByID := make(map[string]string, len(doctors))
	for _, d := range doctors {
		docByID[d.ID.String()] = d.Name
	}
	byDoctor := make(map[string]int)
	var doctorOrder []string
	for _, a := range appointments {
		name, ok := docByID[a.DoctorID.String()]
		if !ok {
			name = "Unknown"
		}
		if _, seen := byDoctor[name]; !seen {
			doctorOrder = append(doctorOrder, name)
		}
		byDoctor[name]++
	}
	workload := make([]WorkloadEntry, 0, len(doctorOrder))
	for _, name := range doctorOrder {
		workload = append(workload, WorkloadEntry{Name: name, Count: byDoctor[name]})
	}
	sort.SliceStable(workload, func(i, j int) bool { return workload[i].Count > workload[j].Count })

	genders := make(map[string]int)
	for _, p := range patients {
		if p.Gender != "" {
			genders[p.Gender]++
		}
	}

	return OperationalSummary{
		OccupancyRate:            occupancy,
		AverageStay:              avgStay,
		BusiestDepartment:        busiest,
		AppointmentsByDepartment: byDept,
		DoctorWorkload:           workload,
		GenderDemographics:       genders,
	}
}
