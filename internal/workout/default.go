package workout

// Default is a built-in workout used when the data directory is empty.
func Default() *Workout {
	must := func(s ExerciseSet, err error) ExerciseSet {
		if err != nil {
			panic(err)
		}
		return s
	}

	return New("Default Workout", "", Monday, UpperBodyAbs,
		must(NewExerciseSet(UpperBodyAbs,
			NewExercise("Push-ups", "Hands under shoulders, body in one straight line."),
			NewExercise("Mountain climbers", "Drive the knees to the chest, keep the hips low."),
			NewExercise("Plank", "Forearms down, squeeze glutes and abs."),
		)),
		must(NewExerciseSet(UpperBodyAbs,
			NewExercise("Tricep dips", "Use a sturdy chair, elbows straight back."),
			NewExercise("Bicycle crunches", "Elbow to opposite knee, slow and controlled."),
			NewExercise("Shoulder taps", "High plank, tap each shoulder without rocking."),
		)),
		must(NewExerciseSet(LowerBodyAbs,
			NewExercise("Squats", "Feet shoulder width, sit back and down."),
			NewExercise("Reverse lunges", "Step back, both knees at ninety degrees."),
			NewExercise("Leg raises", "Lower back pressed into the floor."),
		)),
	)
}
