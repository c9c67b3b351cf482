package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/medidash/medidash/internal/config"
	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/inventory"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/patient"
	"github.com/medidash/medidash/internal/domain/prescription"
	"github.com/medidash/medidash/internal/domain/settings"
	"github.com/medidash/medidash/internal/platform/db"
)

var seedSpecialties = []string{"Cardiology", "Neurology", "Orthopedics", "Pediatrics", "General Medicine"}

var seedMedicines = []struct {
	name  string
	price float64
}{
	{"Aspirin 81mg", 2.5},
	{"Lisinopril 10mg", 4},
	{"Metformin 500mg", 4.5},
	{"Paracetamol 500mg", 2.5},
	{"Amoxicillin 250mg", 6},
	{"Atorvastatin 20mg", 8},
	{"Omeprazole 20mg", 5},
	{"Cetirizine 10mg", 3},
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			seedVal, _ := cmd.Flags().GetUint64("seed")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return runSeed(ctx, pool, seedVal)
		},
	}
	cmd.Flags().Uint64("seed", 0, "Faker seed for reproducible data (0 = random)")
	return cmd
}

func runSeed(ctx context.Context, pool *pgxpool.Pool, seedVal uint64) error {
	faker := gofakeit.New(seedVal)
	today := time.Now().UTC()

	departmentRepo := department.NewRepo(pool)
	doctorRepo := doctor.NewRepo(pool)
	patientRepo := patient.NewRepo(pool)
	appointmentRepo := appointment.NewRepo(pool)
	labReportRepo := labreport.NewRepo(pool)
	prescriptionRepo := prescription.NewRepo(pool)
	inventoryRepo := inventory.NewRepo(pool)
	settingsRepo := settings.NewRepo(pool)

	// Departments
	departments := make([]*department.Department, 0, len(seedSpecialties))
	for _, name := range seedSpecialties {
		d := &department.Department{
			Name:        name,
			Description: faker.Sentence(8),
		}
		if err := departmentRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("seed department: %w", err)
		}
		departments = append(departments, d)
	}

	// Doctors with weekday morning/afternoon windows
	doctors := make([]*doctor.Doctor, 0, len(seedSpecialties))
	for i, specialty := range seedSpecialties {
		d := &doctor.Doctor{
			Name:      "Dr. " + faker.Name(),
			Specialty: specialty,
			Email:     faker.Email(),
			Phone:     faker.Numerify("9#########"),
			Availability: []*doctor.AvailabilitySlot{
				{Day: doctor.Weekdays[1+i%5], StartTime: "09:00", EndTime: "13:00"},
				{Day: doctor.Weekdays[1+(i+2)%5], StartTime: "14:00", EndTime: "18:00"},
			},
		}
		if err := doctorRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("seed doctor: %w", err)
		}
		if err := doctorRepo.ReplaceSlots(ctx, d.ID, d.Availability); err != nil {
			return fmt.Errorf("seed doctor availability: %w", err)
		}
		doctors = append(doctors, d)
	}

	// Patients; every fourth is currently admitted, every sixth discharged
	patients := make([]*patient.Patient, 0, 20)
	for i := 0; i < 20; i++ {
		p := &patient.Patient{
			Name:    faker.Name(),
			Age:     faker.Number(1, 90),
			Gender:  faker.RandomString([]string{"Male", "Female", "Other"}),
			Email:   faker.Email(),
			Phone:   faker.Numerify("9#########"),
			Address: faker.Address().Address,
		}
		if i%4 == 0 {
			admit := today.AddDate(0, 0, -faker.Number(1, 10)).Format("2006-01-02")
			room := fmt.Sprintf("%d%02d", faker.Number(1, 4), faker.Number(1, 20))
			status := patient.PaymentUnpaid
			p.AdmitDate = &admit
			p.RoomNumber = &room
			p.PaymentStatus = &status
			if i%6 == 0 {
				discharge := today.AddDate(0, 0, -faker.Number(0, 3)).Format("2006-01-02")
				paid := patient.PaymentPaid
				p.DischargeDate = &discharge
				p.PaymentStatus = &paid
			}
		}
		if err := patientRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient: %w", err)
		}
		patients = append(patients, p)
	}

	// Appointments spread over the last two months
	for i := 0; i < 30; i++ {
		doc := doctors[faker.Number(0, len(doctors)-1)]
		dept := departments[faker.Number(0, len(departments)-1)]
		pat := patients[faker.Number(0, len(patients)-1)]
		status := faker.RandomString([]string{
			appointment.StatusScheduled, appointment.StatusCompleted, appointment.StatusCancelled,
		})
		payment := faker.RandomString([]string{appointment.PaymentPaid, appointment.PaymentUnpaid})
		mode := "Cash"
		if payment == appointment.PaymentUnpaid {
			mode = appointment.PaymentModeNA
		}
		a := &appointment.Appointment{
			AppointmentNumber: fmt.Sprintf("APT-%d%03d", today.Unix(), i),
			PatientID:         pat.ID,
			DoctorID:          doc.ID,
			DepartmentID:      dept.ID,
			Date:              today.AddDate(0, 0, -faker.Number(0, 60)).Format("2006-01-02"),
			Time:              fmt.Sprintf("%02d:%02d", faker.Number(9, 17), faker.Number(0, 59)),
			Reason:            faker.Sentence(5),
			Status:            status,
			ConsultationFee:   float64(faker.Number(300, 1500)),
			PaymentStatus:     payment,
			PaymentMode:       mode,
		}
		if err := appointmentRepo.Create(ctx, a); err != nil {
			return fmt.Errorf("seed appointment: %w", err)
		}
	}

	// Lab reports
	tests := []string{"Complete Blood Count", "Lipid Profile", "Liver Function", "Thyroid Panel", "HbA1c"}
	for i := 0; i < 15; i++ {
		status := faker.RandomString([]string{
			labreport.StatusPending, labreport.StatusProcessing, labreport.StatusCompleted,
		})
		sample := labreport.SampleCollected
		if status == labreport.StatusCompleted {
			sample = labreport.SampleAnalysis
		}
		r := &labreport.LabReport{
			ReportNumber: fmt.Sprintf("LR-%d%03d", today.Unix(), i),
			PatientID:    patients[faker.Number(0, len(patients)-1)].ID,
			DoctorID:     doctors[faker.Number(0, len(doctors)-1)].ID,
			TestName:     tests[i%len(tests)],
			Parameters: []labreport.Parameter{
				{Name: "Hemoglobin", ObservedValue: fmt.Sprintf("%.1f", faker.Float64Range(10, 17)), ReferenceValue: "13.0-17.0"},
				{Name: "WBC", ObservedValue: fmt.Sprintf("%d", faker.Number(4000, 11000)), ReferenceValue: "4000-11000"},
			},
			ResultSummary: faker.Sentence(10),
			ReportDate:    today.AddDate(0, 0, -faker.Number(0, 45)).Format("2006-01-02"),
			Status:        status,
			SampleID:      fmt.Sprintf("SMP-%d%03d", today.Unix(), i),
			SampleStatus:  sample,
			TestFee:       float64(faker.Number(200, 2000)),
			PaymentStatus: faker.RandomString([]string{labreport.PaymentPaid, labreport.PaymentUnpaid}),
		}
		if err := labReportRepo.Create(ctx, r); err != nil {
			return fmt.Errorf("seed lab report: %w", err)
		}
	}

	// Inventory
	for _, m := range seedMedicines {
		item := &inventory.InventoryItem{
			Name:       m.name,
			Stock:      faker.Number(0, 200),
			Supplier:   faker.Company(),
			Price:      m.price,
			ExpiryDate: today.AddDate(faker.Number(1, 3), 0, 0).Format("2006-01-02"),
		}
		if err := inventoryRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}

	// Prescriptions; roughly half fulfilled and billed
	for i := 0; i < 15; i++ {
		med := seedMedicines[faker.Number(0, len(seedMedicines)-1)]
		qty := faker.Number(10, 60)
		p := &prescription.Prescription{
			PatientID:    patients[faker.Number(0, len(patients)-1)].ID,
			DoctorID:     doctors[faker.Number(0, len(doctors)-1)].ID,
			MedicineName: med.name,
			Dosage:       faker.RandomString([]string{"10mg", "81mg", "250mg", "500mg"}),
			Quantity:     qty,
			Frequency:    faker.RandomString([]string{"Once a day", "Twice a day", "As needed"}),
			Instructions: faker.Sentence(8),
			DateIssued:   today.AddDate(0, 0, -faker.Number(0, 30)).Format("2006-01-02"),
			Status:       prescription.StatusIssued,
		}
		if i%2 == 0 {
			fulfilled := today.AddDate(0, 0, -faker.Number(0, 15)).Format("2006-01-02")
			total := float64(qty) * med.price
			payment := faker.RandomString([]string{prescription.PaymentPaid, prescription.PaymentUnpaid})
			p.Status = prescription.StatusFulfilled
			p.DateFulfilled = &fulfilled
			p.TotalAmount = &total
			p.PaymentStatus = &payment
		}
		if err := prescriptionRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed prescription: %w", err)
		}
	}

	// Clinic settings
	if err := settingsRepo.Upsert(ctx, &settings.ClinicSettings{
		Name:      "MediDash Clinic",
		Address:   faker.Address().Address,
		Phone:     faker.Numerify("98########"),
		Email:     "contact@medidash.example",
		GSTNumber: "27ABCDE1234F1Z5",
		GSTRate:   18,
	}); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	fmt.Println("Seed data created successfully.")
	return nil
}
