package seed

// Fixed enumerations for status and category fields. FK targets are always
// drawn from already generated parents, so the dataset stays referentially
// consistent regardless of counts.

var clientIndustries = []string{"Retail", "Finance", "Healthcare"}

var categoryNames = []string{"Web", "Mobile", "AI/ML", "Cloud"}

var projectStatuses = []string{"Completed", "In Progress"}

var technologyStacks = []string{"Python", "Node", "Java", "Go"}

var methodologies = []string{"Agile", "Scrum", "Waterfall"}

var employeeRoles = []string{"Developer", "QA", "Manager"}

var departments = []string{"IT", "HR", "Finance"}

var teamRoles = []string{"Dev", "Lead", "QA"}

var goalStatuses = []string{"Pending", "Completed"}

var milestoneStatuses = []string{"Pending", "Completed", "Delayed"}

var defectSeverities = []string{"Low", "Medium", "High", "Critical"}

var defectEnvironments = []string{"QA", "UAT", "PROD"}

var defectStatuses = []string{"Open", "In Progress", "Closed"}

var issueTypes = []string{"Blocker", "Task", "Bug", "Query"}

var issuePriorities = []string{"Low", "Medium", "High"}

var issueStatuses = []string{"Open", "Resolved", "Monitoring"}

var costTypes = []string{"labor", "infra", "misc"}

var exitReasons = []string{"Personal", "Better Offer", "Resignation", "Termination"}

var hiringPositions = []string{"Software Engineer", "QA Engineer", "Project Manager", "Data Analyst"}

var hiringDepartments = []string{"IT", "HR", "Finance", "Product"}

var hiringStatuses = []string{"open", "closed", "hired"}

var courseNames = []string{"AWS Basics", "Python Advanced", "Agile Foundations", "Security Awareness"}
