// Package samples ships the built-in demo résumés used to showcase an
// analysis without uploading a file.
package samples

// Sample is one built-in résumé.
type Sample struct {
	FileName string
	Text     string
	// Size stands in for the byte size of the pretend upload.
	Size int
}

// Get returns the sample with the given ID, or ok=false when no such
// sample exists. IDs are 1-based and stable.
func Get(id int) (Sample, bool) {
	if id < 1 || id > len(all) {
		return Sample{}, false
	}
	return all[id-1], true
}

const sampleFileSize = 250000

var all = []Sample{
	{
		FileName: "software_engineer_resume.pdf",
		Size:     sampleFileSize,
		Text: `John Doe
Software Engineer
john.doe@email.com | (555) 123-4567

EXPERIENCE
Senior Software Engineer | Tech Corp | 2020-2024
- Developed scalable web applications using React and Node.js
- Led a team of 5 developers on multiple projects
- Implemented CI/CD pipelines reducing deployment time by 40%

Software Developer | StartupXYZ | 2018-2020
- Built RESTful APIs using Python and Django
- Collaborated with cross-functional teams on product development

EDUCATION
Bachelor of Science in Computer Science
University of Technology | 2014-2018

SKILLS
JavaScript, Python, React, Node.js, SQL, MongoDB, AWS, Docker`,
	},
	{
		FileName: "data_scientist_resume.pdf",
		Size:     sampleFileSize,
		Text: `Jane Smith
Data Scientist
jane.smith@email.com | (555) 987-6543

EXPERIENCE
Senior Data Scientist | Analytics Inc | 2021-2024
- Developed machine learning models improving prediction accuracy by 25%
- Analyzed large datasets using Python and SQL
- Created data visualizations and dashboards using Tableau

Data Analyst | Research Corp | 2019-2021
- Performed statistical analysis on customer behavior data
- Built automated reporting systems

EDUCATION
Master of Science in Data Science
Data University | 2017-2019

SKILLS
Python, R, SQL, Machine Learning, Tableau, Pandas, Scikit-learn, Statistics`,
	},
	{
		FileName: "ux_designer_resume.pdf",
		Size:     sampleFileSize,
		Text: `Alex Johnson
UX Designer
alex.johnson@email.com | (555) 456-7890

EXPERIENCE
Senior UX Designer | Design Studio | 2020-2024
- Led user research and design for mobile applications
- Created wireframes, prototypes, and user journey maps
- Collaborated with product managers and developers

UX Designer | Creative Agency | 2018-2020
- Designed user interfaces for web and mobile platforms
- Conducted user testing and usability studies

EDUCATION
Bachelor of Fine Arts in Graphic Design
Art Institute | 2014-2018

SKILLS
Figma, Sketch, Adobe Creative Suite, Prototyping, User Research, Wireframing`,
	},
}
